package colour

// defaultWhitelist is the curated reference palette every sample is matched
// against. The order is significant: when two entries collect the same number
// of hits, the one defined first ranks first.
var defaultWhitelist = []Packed{
	0x660000, 0x990000, 0xcc0000, 0xcc3333, 0xea4c88,
	0x993399, 0x663399, 0x333399, 0x0066cc, 0x0099cc,
	0x66cccc, 0x77cc33, 0x669900, 0x336600, 0x666600,
	0x999900, 0xcccc33, 0xffff00, 0xffcc33, 0xff9900,
	0xff6600, 0xcc6633, 0x996633, 0x663300, 0x000000,
	0x999999, 0xcccccc, 0xffffff, 0xe7d8b1, 0xfdadc7,
	0x424153, 0xabbcda, 0xf5dd01,
}

// DefaultWhitelist returns a copy of the curated reference palette.
// Callers may freely modify the returned slice without affecting other users.
func DefaultWhitelist() []Packed {
	whitelist := make([]Packed, len(defaultWhitelist))
	copy(whitelist, defaultWhitelist)
	return whitelist
}
