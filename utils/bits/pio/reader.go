package pio

func U8(b []byte) (i uint8) {
	return b[0]
}

func U16BE(b []byte) (i uint16) {
	i = uint16(b[0])
	i <<= 8
	i |= uint16(b[1])
	return
}

func I16BE(b []byte) (i int16) {
	return int16(U16BE(b))
}

func U24BE(b []byte) (i uint32) {
	i = uint32(b[0])
	i <<= 8
	i |= uint32(b[1])
	i <<= 8
	i |= uint32(b[2])
	return
}

func U32BE(b []byte) (i uint32) {
	i = uint32(b[0])
	i <<= 8
	i |= uint32(b[1])
	i <<= 8
	i |= uint32(b[2])
	i <<= 8
	i |= uint32(b[3])
	return
}

func U64BE(b []byte) (i uint64) {
	i = uint64(b[0])
	for _, c := range b[1:8] {
		i <<= 8
		i |= uint64(c)
	}
	return
}

func I64BE(b []byte) (i int64) {
	return int64(U64BE(b))
}

// UBE packs up to 8 bytes big-endian. An empty slice is 0.
func UBE(b []byte) (i uint64) {
	for _, c := range b {
		i <<= 8
		i |= uint64(c)
	}
	return
}

// IBE is UBE sign-extended from the top bit of b[0].
func IBE(b []byte) (i int64) {
	if len(b) == 0 {
		return 0
	}
	i = int64(UBE(b))
	if shift := uint(64 - 8*len(b)); shift > 0 && shift < 64 {
		i = i << shift >> shift
	}
	return
}
