package counter

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCounter(t *testing.T) {
	c := NewCounter()
	wg := sync.WaitGroup{}
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Add(2)
		}()
	}
	wg.Wait()

	assert.Equal(t, 20, c.Count())
	assert.Equal(t, 20, c.Swap())
	assert.Equal(t, 0, c.Count())
}
