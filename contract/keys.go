package main

import "fundme/sdk"

// packU64LEInline writes a uint64 into dst in little-endian order so keys stay compact.
func packU64LEInline(x uint64, dst []byte) {
	dst[0] = byte(x)
	dst[1] = byte(x >> 8)
	dst[2] = byte(x >> 16)
	dst[3] = byte(x >> 24)
	dst[4] = byte(x >> 32)
	dst[5] = byte(x >> 40)
	dst[6] = byte(x >> 48)
	dst[7] = byte(x >> 56)
}

// fundedKey is 0x01 followed by the raw address bytes.
func fundedKey(addr sdk.Address) string {
	addrStr := AddressToString(addr)
	buf := make([]byte, 0, 1+len(addrStr))
	buf = append(buf, kFunded)
	buf = append(buf, addrStr...)
	return string(buf)
}

// funderKey is 0x02 followed by the list position.
func funderKey(idx uint64) string {
	var buf [9]byte
	buf[0] = kFunder
	packU64LEInline(idx, buf[1:])
	return string(buf[:])
}
