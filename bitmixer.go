package automaton

// Golden ratio bit mixer.
const PHI_C64 = uint64(0x9e3779b97f4a7c15)

func mix(key int) int {
	return mix32(key)
}

// 32-bit finalization step of MurmurHash3.
func mix32(v int) int {
	k := uint32(v)
	k = (k ^ (k >> 16)) * 0x85ebca6b
	k = (k ^ (k >> 13)) * 0xc2b2ae35
	return int(k ^ (k >> 16))
}

// Order-sensitive combination of h with the next value.
func mixPhi(h uint64, v int) uint64 {
	h = (h ^ uint64(uint32(mix32(v)))) * PHI_C64
	return h ^ (h >> 32)
}
