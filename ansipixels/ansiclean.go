package ansipixels

import "github.com/rivo/uniseg"

const esc = 0x1b

// AnsiClean removes the ANSI escape sequences (ESC [ ... final byte) from str.
// An unterminated sequence at the end is dropped.
func AnsiClean(str []byte) []byte {
	res := make([]byte, 0, len(str))
	for i := 0; i < len(str); i++ {
		c := str[i]
		if c != esc {
			res = append(res, c)
			continue
		}
		i++
		if i < len(str) && str[i] == '[' {
			i++
			for i < len(str) && (str[i] < 0x40 || str[i] > 0x7e) {
				i++
			}
		}
		// i is on the final byte, skipped by the loop increment
	}
	return res
}

// ScreenWidth is the number of terminal columns str uses once printed,
// ignoring escape sequences and counting wide runes (emojis, CJK) as 2.
func ScreenWidth(str string) int {
	return uniseg.StringWidth(string(AnsiClean([]byte(str))))
}
