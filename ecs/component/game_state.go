package component

// CoinCounter is the session's game state. Collected only grows and Won is
// terminal.
type CoinCounter struct {
	Collected int
	Total     int
	Won       bool
}

// NewCoinCounter starts a counter for total coins. With nothing to collect
// the game is already won.
func NewCoinCounter(total int) *CoinCounter {
	if total < 0 {
		total = 0
	}
	return &CoinCounter{Total: total, Won: total == 0}
}

// Collect records one capture. It reports whether this capture won the game.
func (c *CoinCounter) Collect() bool {
	if c == nil || c.Won {
		return false
	}
	if c.Collected < c.Total {
		c.Collected++
	}
	if c.Collected == c.Total {
		c.Won = true
		return true
	}
	return false
}

var CoinCounterComponent = NewComponent[CoinCounter]()
