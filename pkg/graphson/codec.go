package graphson

import "sync"

var (
	defaultCodecOnce sync.Once
	defaultWriter    *Writer
	defaultReader    *Reader
	defaultCodecErr  error
)

func defaultCodec() (*Writer, *Reader, error) {
	defaultCodecOnce.Do(func() {
		defaultWriter, defaultCodecErr = NewWriter()
		if defaultCodecErr != nil {
			return
		}
		defaultReader, defaultCodecErr = NewReader()
	})
	return defaultWriter, defaultReader, defaultCodecErr
}

// Marshal encodes v as GraphSON using the global registry.
func Marshal(v any) ([]byte, error) {
	w, _, err := defaultCodec()
	if err != nil {
		return nil, err
	}
	text, err := w.WriteObject(v)
	if err != nil {
		return nil, err
	}
	return []byte(text), nil
}

// Unmarshal decodes GraphSON using the global registry.
func Unmarshal(data []byte) (any, error) {
	_, r, err := defaultCodec()
	if err != nil {
		return nil, err
	}
	return r.ReadObject(string(data))
}
