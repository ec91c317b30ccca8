package core

// Text encodings let snapshots serialize enums by name

func (d Difficulty) MarshalText() ([]byte, error)    { return []byte(d.String()), nil }
func (m RuleMode) MarshalText() ([]byte, error)      { return []byte(m.String()), nil }
func (p PowerUpType) MarshalText() ([]byte, error)   { return []byte(p.String()), nil }
func (c GameOverCause) MarshalText() ([]byte, error) { return []byte(c.String()), nil }
func (s State) MarshalText() ([]byte, error)         { return []byte(s.String()), nil }
