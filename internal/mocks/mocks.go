// Package mocks contains minimock mocks of the mapvec contracts.
package mocks

//go:generate go tool minimock -i github.com/tarantool/go-mapvec.MapSink -o map_sink_mock.go -n MapSinkMock -p mocks
