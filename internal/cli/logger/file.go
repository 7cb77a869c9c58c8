package logger

import (
	"fmt"
	"os"
	"syscall"
)

// NewLogFile opens filename for appending. The file is reopened transparently
// after an external rotation removed it.
func NewLogFile(filename string) (*LogFile, error) {
	f := &LogFile{filename: filename}
	if err := f.open(); err != nil {
		return nil, err
	}
	return f, nil
}

type LogFile struct {
	*os.File

	filename string
}

func (self *LogFile) open() (err error) {
	self.File, err = os.OpenFile(self.filename,
		os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("open file: %w", err)
	}
	return nil
}

func (self *LogFile) Write(p []byte) (int, error) {
	if err := self.reopenIfRemoved(); err != nil {
		return 0, fmt.Errorf("reopen file %q: %w", self.filename, err)
	}

	n, err := self.File.Write(p)
	if err != nil {
		return n, fmt.Errorf("write to %q: %w", self.filename, err)
	}
	return n, nil
}

func (self *LogFile) reopenIfRemoved() error {
	finfo, err := self.Stat()
	if err != nil {
		return fmt.Errorf("stat of %q: %w", self.filename, err)
	}

	if sys := finfo.Sys(); sys != nil {
		if stat, ok := sys.(*syscall.Stat_t); ok && stat.Nlink > 0 {
			return nil
		}
	}

	if err := self.Close(); err != nil {
		return fmt.Errorf("close %q: %w", self.filename, err)
	}
	return self.open()
}
