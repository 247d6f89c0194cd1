package diagnostics

// Sink receives diagnostics. Reporters never read back what they emitted.
type Sink interface {
	Add(err *DiagnosticError)
}

// Collector is a Sink that keeps diagnostics in the order they were reported.
type Collector struct {
	File   string // stamped onto diagnostics that have no file yet
	errors []*DiagnosticError
}

func NewCollector(file string) *Collector {
	return &Collector{File: file}
}

func (c *Collector) Add(err *DiagnosticError) {
	if err == nil {
		return
	}
	if err.File == "" {
		err.File = c.File
	}
	c.errors = append(c.errors, err)
}

// Errors returns the collected diagnostics.
func (c *Collector) Errors() []*DiagnosticError {
	return c.errors
}

func (c *Collector) Len() int {
	return len(c.errors)
}

// Count returns how many diagnostics with the given code were reported.
func (c *Collector) Count(code ErrorCode) int {
	n := 0
	for _, err := range c.errors {
		if err.Code == code {
			n++
		}
	}
	return n
}

// Reset drops everything collected so far.
func (c *Collector) Reset() {
	c.errors = nil
}
