package crc

import "math/big"

// entry is the compact catalogue row for widths up to 64 bits. The
// residue field uses -1 where the catalogue leaves the residue open.
type entry struct {
	name           string
	width          int
	poly, initial  uint64
	refIn, refOut  bool
	xorOut, check  uint64
	residue        int64
	aliases        []string
}

// The RevEng catalogue of parametrised CRC algorithms. Entries are
// ordered by width, then name; duplicate parameter sets published under
// several names are carried as aliases of the canonical name.
var entries = []entry{
	{"CRC-3/GSM", 3, 0x3, 0x0, false, false, 0x7, 0x4, 0x2, nil},
	{"CRC-3/ROHC", 3, 0x3, 0x7, true, true, 0x0, 0x6, 0, nil},
	{"CRC-4/G-704", 4, 0x3, 0x0, true, true, 0x0, 0x7, 0, []string{"CRC-4/ITU"}},
	{"CRC-4/INTERLAKEN", 4, 0x3, 0xf, false, false, 0xf, 0xb, 0x2, nil},
	{"CRC-5/EPC-C1G2", 5, 0x09, 0x09, false, false, 0x00, 0x00, 0, []string{"CRC-5/EPC"}},
	{"CRC-5/G-704", 5, 0x15, 0x00, true, true, 0x00, 0x07, 0, []string{"CRC-5/ITU"}},
	{"CRC-5/USB", 5, 0x05, 0x1f, true, true, 0x1f, 0x19, 0x06, nil},
	{"CRC-6/CDMA2000-A", 6, 0x27, 0x3f, false, false, 0x00, 0x0d, 0, nil},
	{"CRC-6/CDMA2000-B", 6, 0x07, 0x3f, false, false, 0x00, 0x3b, 0, nil},
	{"CRC-6/DARC", 6, 0x19, 0x00, true, true, 0x00, 0x26, 0, nil},
	{"CRC-6/G-704", 6, 0x03, 0x00, true, true, 0x00, 0x06, 0, []string{"CRC-6/ITU"}},
	{"CRC-6/GSM", 6, 0x2f, 0x00, false, false, 0x3f, 0x13, 0x3a, nil},
	{"CRC-7/MMC", 7, 0x09, 0x00, false, false, 0x00, 0x75, 0, []string{"CRC-7"}},
	{"CRC-7/ROHC", 7, 0x4f, 0x7f, true, true, 0x00, 0x53, 0, nil},
	{"CRC-7/UMTS", 7, 0x45, 0x00, false, false, 0x00, 0x61, 0, nil},
	{"CRC-8/AUTOSAR", 8, 0x2f, 0xff, false, false, 0xff, 0xdf, 0x42, nil},
	{"CRC-8/BLUETOOTH", 8, 0xa7, 0x00, true, true, 0x00, 0x26, 0, nil},
	{"CRC-8/CDMA2000", 8, 0x9b, 0xff, false, false, 0x00, 0xda, 0, nil},
	{"CRC-8/DARC", 8, 0x39, 0x00, true, true, 0x00, 0x15, 0, nil},
	{"CRC-8/DVB-S2", 8, 0xd5, 0x00, false, false, 0x00, 0xbc, 0, nil},
	{"CRC-8/GSM-A", 8, 0x1d, 0x00, false, false, 0x00, 0x37, 0, nil},
	{"CRC-8/GSM-B", 8, 0x49, 0x00, false, false, 0xff, 0x94, 0x53, nil},
	{"CRC-8/I-432-1", 8, 0x07, 0x00, false, false, 0x55, 0xa1, 0xac, []string{"CRC-8/ITU"}},
	{"CRC-8/I-CODE", 8, 0x1d, 0xfd, false, false, 0x00, 0x7e, 0, nil},
	{"CRC-8/LTE", 8, 0x9b, 0x00, false, false, 0x00, 0xea, 0, nil},
	{"CRC-8/MAXIM-DOW", 8, 0x31, 0x00, true, true, 0x00, 0xa1, 0, []string{"CRC-8/MAXIM", "DOW-CRC"}},
	{"CRC-8/MIFARE-MAD", 8, 0x1d, 0xc7, false, false, 0x00, 0x99, 0, nil},
	{"CRC-8/NRSC-5", 8, 0x31, 0xff, false, false, 0x00, 0xf7, 0, nil},
	{"CRC-8/OPENSAFETY", 8, 0x2f, 0x00, false, false, 0x00, 0x3e, 0, nil},
	{"CRC-8/ROHC", 8, 0x07, 0xff, true, true, 0x00, 0xd0, 0, nil},
	{"CRC-8/SAE-J1850", 8, 0x1d, 0xff, false, false, 0xff, 0x4b, 0xc4, nil},
	{"CRC-8/SMBUS", 8, 0x07, 0x00, false, false, 0x00, 0xf4, 0, []string{"CRC-8"}},
	{"CRC-8/TECH-3250", 8, 0x1d, 0xff, true, true, 0x00, 0x97, 0, []string{"CRC-8/AES", "CRC-8/EBU"}},
	{"CRC-8/WCDMA", 8, 0x9b, 0x00, true, true, 0x00, 0x25, 0, nil},
	{"CRC-10/ATM", 10, 0x233, 0x000, false, false, 0x000, 0x199, 0, []string{"CRC-10", "CRC-10/I-610"}},
	{"CRC-10/CDMA2000", 10, 0x3d9, 0x3ff, false, false, 0x000, 0x233, 0, nil},
	{"CRC-10/GSM", 10, 0x175, 0x000, false, false, 0x3ff, 0x12a, -1, nil},
	{"CRC-11/FLEXRAY", 11, 0x385, 0x01a, false, false, 0x000, 0x5a3, 0, []string{"CRC-11"}},
	{"CRC-11/UMTS", 11, 0x307, 0x000, false, false, 0x000, 0x061, 0, nil},
	{"CRC-12/CDMA2000", 12, 0xf13, 0xfff, false, false, 0x000, 0xd4d, 0, nil},
	{"CRC-12/DECT", 12, 0x80f, 0x000, false, false, 0x000, 0xf5b, 0, []string{"X-CRC-12", "CRC-12-X"}},
	{"CRC-12/GSM", 12, 0xd31, 0x000, false, false, 0xfff, 0xb34, -1, nil},
	{"CRC-12/UMTS", 12, 0x80f, 0x000, false, true, 0x000, 0xdaf, 0, []string{"CRC-12/3GPP"}},
	{"CRC-13/BBC", 13, 0x1cf5, 0x0000, false, false, 0x0000, 0x04fa, 0, nil},
	{"CRC-14/DARC", 14, 0x0805, 0x0000, true, true, 0x0000, 0x082d, 0, nil},
	{"CRC-14/GSM", 14, 0x202d, 0x0000, false, false, 0x3fff, 0x30ae, -1, nil},
	{"CRC-15/CAN", 15, 0x4599, 0x0000, false, false, 0x0000, 0x059e, 0, []string{"CRC-15"}},
	{"CRC-15/MPT1327", 15, 0x6815, 0x0000, false, false, 0x0001, 0x2566, -1, nil},
	{"CRC-16/ARC", 16, 0x8005, 0x0000, true, true, 0x0000, 0xbb3d, 0, []string{"ARC", "CRC-16/LHA", "CRC-IBM"}},
	{"CRC-16/CDMA2000", 16, 0xc867, 0xffff, false, false, 0x0000, 0x4c06, 0, nil},
	{"CRC-16/CMS", 16, 0x8005, 0xffff, false, false, 0x0000, 0xaee7, 0, nil},
	{"CRC-16/DDS-110", 16, 0x8005, 0x800d, false, false, 0x0000, 0x9ecf, 0, nil},
	{"CRC-16/DECT-R", 16, 0x0589, 0x0000, false, false, 0x0001, 0x007e, 0x0589, []string{"R-CRC-16"}},
	{"CRC-16/DECT-X", 16, 0x0589, 0x0000, false, false, 0x0000, 0x007f, 0, []string{"X-CRC-16"}},
	{"CRC-16/DNP", 16, 0x3d65, 0x0000, true, true, 0xffff, 0xea82, 0x66c5, nil},
	{"CRC-16/EN-13757", 16, 0x3d65, 0x0000, false, false, 0xffff, 0xc2b7, 0xa366, nil},
	{"CRC-16/GENIBUS", 16, 0x1021, 0xffff, false, false, 0xffff, 0xd64e, 0x1d0f, []string{"CRC-16/DARC", "CRC-16/EPC", "CRC-16/EPC-C1G2", "CRC-16/I-CODE"}},
	{"CRC-16/GSM", 16, 0x1021, 0x0000, false, false, 0xffff, 0xce3c, 0x1d0f, nil},
	{"CRC-16/IBM-3740", 16, 0x1021, 0xffff, false, false, 0x0000, 0x29b1, 0, []string{"CRC-16/AUTOSAR", "CRC-16/CCITT-FALSE"}},
	{"CRC-16/IBM-SDLC", 16, 0x1021, 0xffff, true, true, 0xffff, 0x906e, 0xf0b8, []string{"CRC-16/ISO-HDLC", "CRC-16/ISO-IEC-14443-3-B", "CRC-16/X-25", "CRC-B", "X-25"}},
	{"CRC-16/ISO-IEC-14443-3-A", 16, 0x1021, 0xc6c6, true, true, 0x0000, 0xbf05, 0, []string{"CRC-A"}},
	{"CRC-16/KERMIT", 16, 0x1021, 0x0000, true, true, 0x0000, 0x2189, 0, []string{"CRC-16/CCITT", "CRC-16/CCITT-TRUE", "CRC-16/V-41-LSB", "CRC-CCITT", "KERMIT"}},
	{"CRC-16/LJ1200", 16, 0x6f63, 0x0000, false, false, 0x0000, 0xbdf4, 0, nil},
	{"CRC-16/MAXIM-DOW", 16, 0x8005, 0x0000, true, true, 0xffff, 0x44c2, 0xb001, []string{"CRC-16/MAXIM"}},
	{"CRC-16/MCRF4XX", 16, 0x1021, 0xffff, true, true, 0x0000, 0x6f91, 0, nil},
	{"CRC-16/MODBUS", 16, 0x8005, 0xffff, true, true, 0x0000, 0x4b37, 0, []string{"MODBUS"}},
	{"CRC-16/NRSC-5", 16, 0x080b, 0xffff, true, true, 0x0000, 0xa066, 0, nil},
	{"CRC-16/OPENSAFETY-A", 16, 0x5935, 0x0000, false, false, 0x0000, 0x5d38, 0, nil},
	{"CRC-16/OPENSAFETY-B", 16, 0x755b, 0x0000, false, false, 0x0000, 0x20fe, 0, nil},
	{"CRC-16/PROFIBUS", 16, 0x1dcf, 0xffff, false, false, 0xffff, 0xa819, 0xe394, []string{"CRC-16/IEC-61158-2"}},
	{"CRC-16/RIELLO", 16, 0x1021, 0xb2aa, true, true, 0x0000, 0x63d0, 0, nil},
	{"CRC-16/SPI-FUJITSU", 16, 0x1021, 0x1d0f, false, false, 0x0000, 0xe5cc, 0, []string{"CRC-16/AUG-CCITT"}},
	{"CRC-16/T10-DIF", 16, 0x8bb7, 0x0000, false, false, 0x0000, 0xd0db, 0, nil},
	{"CRC-16/TELEDISK", 16, 0xa097, 0x0000, false, false, 0x0000, 0x0fb3, 0, nil},
	{"CRC-16/TMS37157", 16, 0x1021, 0x89ec, true, true, 0x0000, 0x26b1, 0, nil},
	{"CRC-16/UMTS", 16, 0x8005, 0x0000, false, false, 0x0000, 0xfee8, 0, []string{"CRC-16/BUYPASS", "CRC-16/VERIFONE"}},
	{"CRC-16/USB", 16, 0x8005, 0xffff, true, true, 0xffff, 0xb4c8, 0xb001, nil},
	{"CRC-16/XMODEM", 16, 0x1021, 0x0000, false, false, 0x0000, 0x31c3, 0, []string{"CRC-16/ACORN", "CRC-16/LTE", "CRC-16/V-41-MSB", "XMODEM", "ZMODEM"}},
	{"CRC-17/CAN-FD", 17, 0x1685b, 0x00000, false, false, 0x00000, 0x04f03, 0, nil},
	{"CRC-21/CAN-FD", 21, 0x102899, 0x000000, false, false, 0x000000, 0x0ed841, 0, nil},
	{"CRC-24/BLE", 24, 0x00065b, 0x555555, true, true, 0x000000, 0xc25a56, 0, nil},
	{"CRC-24/FLEXRAY-A", 24, 0x5d6dcb, 0xfedcba, false, false, 0x000000, 0x7979bd, 0, nil},
	{"CRC-24/FLEXRAY-B", 24, 0x5d6dcb, 0xabcdef, false, false, 0x000000, 0x1f23b8, 0, nil},
	{"CRC-24/INTERLAKEN", 24, 0x328b63, 0xffffff, false, false, 0xffffff, 0xb4f3e6, 0x144e63, nil},
	{"CRC-24/LTE-A", 24, 0x864cfb, 0x000000, false, false, 0x000000, 0xcde703, 0, nil},
	{"CRC-24/LTE-B", 24, 0x800063, 0x000000, false, false, 0x000000, 0x23ef52, 0, nil},
	{"CRC-24/OPENPGP", 24, 0x864cfb, 0xb704ce, false, false, 0x000000, 0x21cf02, 0, []string{"CRC-24"}},
	{"CRC-24/OS-9", 24, 0x800063, 0xffffff, false, false, 0xffffff, 0x200fa5, 0x800fe3, nil},
	{"CRC-30/CDMA", 30, 0x2030b9c7, 0x3fffffff, false, false, 0x3fffffff, 0x04c34abf, 0x34efa55a, nil},
	{"CRC-31/PHILIPS", 31, 0x04c11db7, 0x7fffffff, false, false, 0x7fffffff, 0x0ce9e46c, -1, nil},
	{"CRC-32/AIXM", 32, 0x814141ab, 0x00000000, false, false, 0x00000000, 0x3010bf7f, 0, []string{"CRC-32Q"}},
	{"CRC-32/AUTOSAR", 32, 0xf4acfb13, 0xffffffff, true, true, 0xffffffff, 0x1697d06a, 0x904cddbf, nil},
	{"CRC-32/BASE91-D", 32, 0xa833982b, 0xffffffff, true, true, 0xffffffff, 0x87315576, 0x45270551, []string{"CRC-32D"}},
	{"CRC-32/BZIP2", 32, 0x04c11db7, 0xffffffff, false, false, 0xffffffff, 0xfc891918, 0xc704dd7b, []string{"CRC-32/AAL5", "CRC-32/DECT-B", "B-CRC-32"}},
	{"CRC-32/CD-ROM-EDC", 32, 0x8001801b, 0x00000000, true, true, 0x00000000, 0x6ec2edc4, 0, nil},
	{"CRC-32/CKSUM", 32, 0x04c11db7, 0x00000000, false, false, 0xffffffff, 0x765e7680, 0xc704dd7b, []string{"CKSUM", "CRC-32/POSIX"}},
	{"CRC-32/ISCSI", 32, 0x1edc6f41, 0xffffffff, true, true, 0xffffffff, 0xe3069283, 0xb798b438, []string{"CRC-32/BASE91-C", "CRC-32/CASTAGNOLI", "CRC-32/INTERLAKEN", "CRC-32C"}},
	{"CRC-32/ISO-HDLC", 32, 0x04c11db7, 0xffffffff, true, true, 0xffffffff, 0xcbf43926, 0xdebb20e3, []string{"CRC-32", "CRC-32/ADCCP", "CRC-32/V-42", "CRC-32/XZ", "PKZIP"}},
	{"CRC-32/JAMCRC", 32, 0x04c11db7, 0xffffffff, true, true, 0x00000000, 0x340bc6d9, 0, []string{"JAMCRC"}},
	{"CRC-32/MPEG-2", 32, 0x04c11db7, 0xffffffff, false, false, 0x00000000, 0x0376e6e7, 0, nil},
	{"CRC-32/XFER", 32, 0x000000af, 0x00000000, false, false, 0x00000000, 0xbd0be338, 0, []string{"XFER"}},
	{"CRC-40/GSM", 40, 0x0004820009, 0x0000000000, false, false, 0xffffffffff, 0xd4164fc646, -1, nil},
	{"CRC-64/ECMA-182", 64, 0x42f0e1eba9ea3693, 0, false, false, 0, 0x6c40df5f0b497347, 0, []string{"CRC-64"}},
	{"CRC-64/GO-ISO", 64, 0x000000000000001b, 0xffffffffffffffff, true, true, 0xffffffffffffffff, 0xb90956c775a41001, 0x5300000000000000, nil},
	{"CRC-64/WE", 64, 0x42f0e1eba9ea3693, 0xffffffffffffffff, false, false, 0xffffffffffffffff, 0x62ec59e3f1a4f00a, -1, nil},
	{"CRC-64/XZ", 64, 0x42f0e1eba9ea3693, 0xffffffffffffffff, true, true, 0xffffffffffffffff, 0x995dc9bbdf1939fa, -1, []string{"CRC-64/GO-ECMA"}},
}

func (e entry) params() Params {
	p := Params{
		Name:       e.name,
		Aliases:    e.aliases,
		Width:      e.width,
		Poly:       new(big.Int).SetUint64(e.poly),
		Init:       new(big.Int).SetUint64(e.initial),
		ReflectIn:  e.refIn,
		ReflectOut: e.refOut,
		XorOut:     new(big.Int).SetUint64(e.xorOut),
		Check:      new(big.Int).SetUint64(e.check),
	}
	if e.residue >= 0 {
		p.Residue = big.NewInt(e.residue)
	}
	return p
}

// mustHex parses a hex literal for the catalogue rows too wide for
// uint64.
func mustHex(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("crc: bad catalogue constant " + s)
	}
	return v
}

func crc82Darc() Params {
	return Params{
		Name:       "CRC-82/DARC",
		Width:      82,
		Poly:       mustHex("0308C0111011401440411"),
		Init:       big.NewInt(0),
		ReflectIn:  true,
		ReflectOut: true,
		XorOut:     big.NewInt(0),
		Check:      mustHex("09EA83F625023801FD612"),
		Residue:    big.NewInt(0),
	}
}
