package inputfile

import (
	"io"
)

// readerCloseForwarder runs every closer in order when closed.
type readerCloseForwarder struct {
	closers []func() error
	io.Reader
}

func (c *readerCloseForwarder) Close() error {
	var err error
	for _, closer := range c.closers {
		if e := closer(); e != nil {
			err = e
		}
	}
	return err
}

type writerCloseForwarder struct {
	closers []func() error
	io.Writer
}

func (c *writerCloseForwarder) Close() error {
	var err error
	for _, closer := range c.closers {
		if e := closer(); e != nil {
			err = e
		}
	}
	return err
}
