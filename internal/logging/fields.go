package logging

import (
	"time"

	"github.com/felixgeelhaar/bolt/v3"
)

type Field func(*bolt.Event) *bolt.Event

func Chart(name string) Field {
	return Str("chart", name)
}

func Kind(kind string) Field {
	return Str("type", kind)
}

func File(path string) Field {
	return Str("file", path)
}

func Shapes(count int) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Int("shapes", count)
	}
}

func Duration(d time.Duration) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Int64("duration_ms", d.Milliseconds())
	}
}

func ErrorField(err error) Field {
	return func(e *bolt.Event) *bolt.Event {
		if err == nil {
			return e
		}
		return e.Err(err)
	}
}

func Str(key, value string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str(key, value)
	}
}
