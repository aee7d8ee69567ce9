package propagation

// TextMapWriter is the write half of a carrier.  A codec sets each field as
// a string key/value pair.
type TextMapWriter interface {
	Set(key, value string)
}

// TextMapReader is the read half of a carrier.  ForeachKey invokes the
// handler once per entry and stops at the first handler error.
type TextMapReader interface {
	ForeachKey(handler func(key, value string) error) error
}

// TextMapCarrier adapts a plain string map to both carrier halves.
type TextMapCarrier map[string]string

func (c TextMapCarrier) Set(key, value string) {
	c[key] = value
}

func (c TextMapCarrier) ForeachKey(handler func(key, value string) error) error {
	for k, v := range c {
		if err := handler(k, v); err != nil {
			return err
		}
	}

	return nil
}
