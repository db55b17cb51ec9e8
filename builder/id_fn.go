// SPDX-License-Identifier: MIT

package builder

import "strconv"

// DecimalID renders an index as a base-10 string ("0","1","2",...).
func DecimalID(i int) string {
	return strconv.Itoa(i)
}

// ExcelColumnID renders an index as a spreadsheet column name:
// 0→"A", 25→"Z", 26→"AA", 27→"AB", ...
func ExcelColumnID(i int) string {
	if i < 0 {
		return ""
	}
	var buf [16]byte
	pos := len(buf)
	for n := i + 1; n > 0; n = (n - 1) / 26 {
		pos--
		buf[pos] = byte('A' + (n-1)%26)
	}

	return string(buf[pos:])
}
