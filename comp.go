package motimove8

// compensationTable remaps a linearly-requested amplitude byte (0..170) to
// the byte the device actually needs in order to deliver that amplitude.
// Entries are identity except for a handful of irregularities around the
// low end of the scale (a duplicate at 10/11, a duplicate at 32/33, and a
// two-entry drop-then-skip around 48..51: indices 48..50 map to 46..48,
// then index 51 jumps straight to 51).
//
// Values are taken verbatim from the original firmware's
// AVAL_COMPENSATION table; this is the single source of truth for the
// table's shape, not the prose description of its irregularities.
var compensationTable = [171]uint8{
	0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 10,
	11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22,
	23, 24, 25, 26, 27, 28, 29, 30, 31, 31, 32, 33,
	34, 35, 36, 37, 38, 39, 40, 41, 42, 43, 44, 45,
	46, 47, 48, 51, 52, 53, 54, 55, 56, 57, 58, 59,
	60, 61, 62, 63, 64, 65, 66, 67, 68, 69, 70, 71,
	72, 73, 74, 75, 76, 77, 78, 79, 80, 81, 82, 83,
	84, 85, 86, 87, 88, 89, 90, 91, 92, 93, 94, 95,
	96, 97, 98, 99, 100, 101, 102, 103, 104, 105, 106, 107,
	108, 109, 110, 111, 112, 113, 114, 115, 116, 117, 118, 119,
	120, 121, 122, 123, 124, 125, 126, 127, 128, 129, 130, 131,
	132, 133, 134, 135, 136, 137, 138, 139, 140, 141, 142, 143,
	144, 145, 146, 147, 148, 149, 150, 151, 152, 153, 154, 155,
	156, 157, 158, 159, 160, 161, 162, 163, 164, 165, 166, 167,
	168, 169, 170,
}

// applyCompensation maps a requested amplitude to its device byte,
// clamping the index to the table's 0..170 domain first.
func applyCompensation(amplitude int) uint8 {
	i := constrain(amplitude, 0, len(compensationTable)-1)
	return compensationTable[i]
}
