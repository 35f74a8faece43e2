package sim

import (
	"fmt"
	"time"
)

// FormatUptime renders d as "Nd Nh Nm". Negative durations render as zero.
func FormatUptime(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	minutes := int(d / time.Minute)
	hours := minutes / 60
	days := hours / 24
	return fmt.Sprintf("%dd %dh %dm", days, hours%24, minutes%60)
}
