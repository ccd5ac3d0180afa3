package style

import (
	"strconv"

	"github.com/jedib0t/go-pretty/v6/text"
)

var (
	RisingEmoji  = "📈"
	FallingEmoji = "📉"
)

// ChangeString formats a percent change with an explicit sign, e.g. "+3.42%".
func ChangeString(pct float64) string {
	s := strconv.FormatFloat(pct, 'f', 2, 64) + "%"
	if pct > 0 {
		return "+" + s
	}
	return s
}

// ColoredChangeString is ChangeString in green for gains and red for losses.
func ColoredChangeString(pct float64) string {
	switch {
	case pct > 0:
		return text.FgGreen.Sprint(ChangeString(pct))
	case pct < 0:
		return text.FgRed.Sprint(ChangeString(pct))
	}
	return ChangeString(pct)
}

func ChangeEmoji(pct float64) string {
	switch {
	case pct > 0:
		return RisingEmoji
	case pct < 0:
		return FallingEmoji
	}
	return ""
}
