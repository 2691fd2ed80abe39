package financas

import "fmt"

// Rate is a return rate per elapsed month, as a fraction (0.05 = 5%/month).
type Rate float64

func (r Rate) Equal(s Rate) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := r - s
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (r Rate) String() string {
	return fmt.Sprintf("%.2f%%", float64(r)*100)
}
