// Copyright (C) 2020 Yaron Gvili and Gvili Tech Ltd.
//
// See the accompanying LICENSE.txt file for licensing information.

package swifft

import (
	"testing"
)

var goldenStrings = map[string]struct{ input, output, compact string }{
	"descending": {
		"{0001020304050607 08090A0B0C0D0E0F 1011121314151617 18191A1B1C1D1E1F 2021222324252627 28292A2B2C2D2E2F 3031323334353637 38393A3B3C3D3E3F 4041424344454647 48494A4B4C4D4E4F 5051525354555657 58595A5B5C5D5E5F 6061626364656667 68696A6B6C6D6E6F 7071727374757677 78797A7B7C7D7E7F 8081828384858687 88898A8B8C8D8E8F 9091929394959697 98999A9B9C9D9E9F A0A1A2A3A4A5A6A7 A8A9AAABACADAEAF B0B1B2B3B4B5B6B7 B8B9BABBBCBDBEBF C0C1C2C3C4C5C6C7 C8C9CACBCCCDCECF D0D1D2D3D4D5D6D7 D8D9DADBDCDDDEDF E0E1E2E3E4E5E6E7 E8E9EAEBECEDEEEF F0F1F2F3F4F5F6F7 F8F9FAFBFCFDFEFF}",
		"{001300B3004C00500029006E006300F8 0016002C00B40078004400CC009A009B 006A008B006900430048002800040015 00F9002E006E00CC00940077000500AE 008F00CB00C400EC00C000DE006000E4 007900900049004C0004004300F80001 00EE0090008F000D0064007D0031002C 0088007400220001005D00DA00CE0092}",
		"{143E1BF707D6305416C993A1ADDC07B3 6D7D7611DF8D6F2A001316DCD575EC1F 93C56561A90290EC7CECB0D3F058D8DE F529A1041B923B588C3A1C2C7249BAB6}",
	},
	"dense1": {
		"{AB8F1B2A7543E88C 48E42350DB8CCFB1 C41C8109D4691B32 3913A44FF2CFEF9E D1655A00A80E6FCD 999ECE8B57B5F8EA 1750335C8C74C2F3 95C00C336FBFBB3A C3871AC2B76C408C B13D1D028A5EBC53 B3914865A5FC4BAF 63E47560CC50F990 38E4CFE16C00E07A E88B53A1C1C98B87 45F8AF2F219000FA 25823B87F8A4527C 821C2ED3B33664C9 261F7BEFF195AA17 1776A124FF7CF984 4A0CF6496456C376 8EB02F8267A88EEE DD7718F95169994F 1B9A7AF98F737B6D 37A1D1207693A1E2 D3F666C4DA54B31A 5B8446161347FF7E 5D83CF5DCE47854B 64F03B9102609C8F 963A14C39903018D 08A24A109DA1F920 616E9490640A5CAE 33C3204EDE1DE85A}",
		"{007600D5005800BA001F007E00080064 002D006900A300910000003600170006 009D008300400061008D00CD00CC009D 000A00F60098000A004D007000DA00C2 003C00CD008F00DA005D00D200F5006D 00810017000A007100AE0013004B00FE 00D9000A00740069008100BD00BC0070 00AF000600DC00330077004600C30030}",
		"{7A1E23365BDE3C662EAADA2510DBA91D A1DE51E95FD632840B4340E511CACEFB 3E7B60FDB09A5A0384A93CB5561D851D DF0B9E133BAED02AB3DE77E85A36BC74}",
	},
	"dense2": {
		"{CD3241E4DD8C2D85 01ABEA18E4645E90 54BACA42C8A19B67 CD3435DB25AB4C2F 9E065E62E186DEE1 27CD5AB2387009F6 B3E5587E9F800AB0 48BE701E384A6DEF 5DD0656DB74E9749 99D5A27CEF889A2E 94499F80909F80D1 4F4ACE9AD3B2866C 8B64E3079D834393 AC3030040AD1646F 4D05F476527F076C 93B505B157460584 38BEB85E5EEE293B 0DB97790658926F4 6B546EC41812CB7C B8645B135D0E4684 A6F7A790EBCF9B5D 5C67BEEC08896F6B 3D8142378727206C 4408BACB7ECB043B 420F364B149C0032 89DF45167AD84E90 5050A7B023EB4FC7 898810FA26A8DB10 535D1BEE4D49E889 C3BA20E767C31E3F D42F3241F8233783 4F92B933BC4F67E9}",
		"{002A0086006E001900C100D200BE007F 009A00BB0044009200E6008F00070057 00CE006000C900E800CD00250034003B 00460097000601000021005300640007 001A00D80008005C00CF00A700570095 009900F000C700DE00FE004200C100BD 0083002B00A400AB008F0062008C0013 00F6008500E400520059004E00C90064}",
		"{2BB313ECBA4E7D079F026A12A0FC0EFE D41615CF176E5840488A61A2D09401C2 1B954AD1116173B89E321BF011E86EEC 86CC7D6C01CA778DFD575E69B7380885}",
	},
	"dense3": {
		"{66BC58CDACCAC30E 4146C34333E59F2E 80B7595808DD9642 EC3E8B8FCB79BDAE 6F4226416DAD970B 967ABE1243E8DF33 9484591127C1FE74 E54746166BC8E8EA DE163DEC44679182 60A1F535299B6832 778985B661369D29 74F7E1A143BF21A3 D3E14E8595E6C58E 2CD209CEA7758187 788C292A079A71E1 CE4E444DD39F2987 3A23140E695DCB75 A32F86F41891026C ECB35D7373FBA46F 6AF137C1A5C51B6D 88E62AB128C2B314 29B90CBEF54D588B 96AA8A7DBCE1EDB6 CB10D150B4E51B66 5138924C0A0D75EF 1A92C9CBA5527F21 DD02BA3E39791C5B 35A1F1B0F8159940 2586EDCE30AF0FE3 23F1801C168F09F0 45B0542268DC9DDA 84A863869EAF714C}",
		"{0056004600630082005E00E1002A000F 0095008300F000D1008A003800890055 007D00060084008A004C0090002100BD 000C00090027007D00B20036003C00F4 0057007E000000AD00B3008B0064000A 0060000E00420098007400BE00CF0044 0090002C00C200FA004A00C5007C003B 000D009600D5005D004F00AD001E00B4}",
		"{58A927649217FDF999A65CB8ED13B479 807BFDA83F7D734B0C5E5C718C4901D1 59E92B0D39429F2E62B685E7B0FA488D 9429B52B0386923E0DF6792EAA00E4A3}",
	},
	"zeros": {
		"{0000000000000000 0000000000000000 0000000000000000 0000000000000000 0000000000000000 0000000000000000 0000000000000000 0000000000000000 0000000000000000 0000000000000000 0000000000000000 0000000000000000 0000000000000000 0000000000000000 0000000000000000 0000000000000000 0000000000000000 0000000000000000 0000000000000000 0000000000000000 0000000000000000 0000000000000000 0000000000000000 0000000000000000 0000000000000000 0000000000000000 0000000000000000 0000000000000000 0000000000000000 0000000000000000 0000000000000000 0000000000000000}",
		"{00000000000000000000000000000000 00000000000000000000000000000000 00000000000000000000000000000000 00000000000000000000000000000000 00000000000000000000000000000000 00000000000000000000000000000000 00000000000000000000000000000000 00000000000000000000000000000000}",
		"{00000000000000000000000000000000 00000000000000000000000000000000 00000000000000000000000000000000 00000000000000000000000000000000}",
	},
}

// TestStrings pins the hex formatting of the golden blocks.
func TestStrings(t *testing.T) {
	for _, v := range loadVectors(t, "testdata/pikey_vectors.yaml") {
		v := v
		t.Run(v.Name, func(t *testing.T) {
			want, ok := goldenStrings[v.Name]
			if !ok {
				t.Fatalf("no golden strings for %q", v.Name)
			}
			in := vectorInput(t, &v)
			if got := in.String(); got != want.input {
				t.Errorf("input string:\ngot  %s\nwant %s", got, want.input)
			}
			var out Output
			Compute(in, &out)
			if got := out.String(); got != want.output {
				t.Errorf("output string:\ngot  %s\nwant %s", got, want.output)
			}
			d := out.Compact()
			if got := d.String(); got != want.compact {
				t.Errorf("compact string:\ngot  %s\nwant %s", got, want.compact)
			}
		})
	}
}
