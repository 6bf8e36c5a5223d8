// Copyright (C) 2020 Yaron Gvili and Gvili Tech Ltd.
//
// See the accompanying LICENSE.txt file for licensing information.

package swifft

// WireCompatibleKey reports whether PIKey is the upstream SWIFFT key
// table. It is false: the upstream table could not be obtained, and
// PIKey below is a documented replacement. Hashes are deterministic and
// bit-identical across this library's backends and releases, but they
// DO NOT match implementations built with the upstream table — see
// testdata/upstream_vectors.yaml for the values such implementations
// produce. Interoperating with one requires obtaining its key table and
// passing it to FFTSum directly.
const WireCompatibleKey = false

// PIKey is the fixed key of the one-shot hash: M*N centered elements of
// Z/257Z drawn from the binary expansion of pi by 9-bit rejection
// sampling (values of 257 and above are discarded). PIKey[i*N:] weights
// the coefficients of input group i in FFTSum.
//
// This is a regenerated key, not the upstream one; see
// WireCompatibleKey.
var PIKey = [M * N]int16{
	72, -4, -121, -77, -63, 105, 51, 40, 55, 14, -48, 82,
	9, 112, -121, 58, 2, 23, -7, 115, -57, 16, 113, -102,
	49, 10, 109, -96, 77, -75, -94, 47, 72, -75, 94, -4,
	-61, 93, 105, -43, 47, -35, -32, 103, -113, -118, -53, 69,
	-1, 124, -124, -78, 54, 54, 56, -101, -4, 73, -5, 54,
	-86, -94, 88, -30, 47, 106, 66, 123, -88, -113, -19, 37,
	109, -51, 48, -29, 2, -16, -25, 70, -96, 95, 25, -113,
	-69, -9, 119, 88, 96, 116, 96, 115, -56, 30, -6, -73,
	-9, 111, -105, 78, -4, 46, 96, 87, -112, 97, 62, 42,
	114, -80, 22, 102, 92, 104, 69, 15, -117, 85, 67, -82,
	-9, 125, 8, -34, -17, -71, -71, 24, 99, 114, 61, -66,
	-76, 109, 103, -13, -56, -101, 18, -62, -77, 107, -66, 109,
	-127, 50, -41, -21, 9, -104, 41, 31, 86, 96, -70, 1,
	-83, -61, -65, 55, 32, -110, 116, -85, 61, -2, 112, -4,
	33, 57, 92, 45, 36, 42, -113, 2, 105, 84, -42, -49,
	-107, -104, -101, -62, -82, -101, -114, 13, -109, -49, -47, -120,
	-64, -86, -95, -51, -19, -38, 9, 119, 10, 31, -122, 81,
	107, -52, -56, 72, -62, -117, 24, -55, 86, 62, -76, 55,
	23, 9, 7, 104, 6, -98, -84, 100, -23, 54, 126, 48,
	-102, 4, -13, -29, 5, 18, -112, 127, -84, 105, 124, -33,
	-102, 14, -105, 19, 70, -58, -97, 106, -28, -33, 19, 0,
	107, 106, -90, -128, 125, 69, 25, -45, -112, -114, 108, -90,
	-45, -104, 93, -51, -21, -35, -53, 74, 5, 42, 74, -125,
	38, 105, -66, -78, 15, 80, 28, -56, -29, -17, 101, -83,
	67, -127, -82, 112, 94, -65, -57, 86, 32, 49, 44, -29,
	-66, 58, -98, -53, -9, 120, -75, 90, -97, 123, 69, -49,
	-87, -87, 61, 56, -21, 20, -113, -9, 6, 83, 43, 101,
	1, -34, 46, -35, 85, 61, 126, 115, 88, 39, -27, -40,
	123, 23, -15, -57, 4, -49, 16, -11, -58, 48, -19, 37,
	-5, 107, -27, -14, -38, 86, -71, -94, -106, -69, 59, -93,
	47, -49, -26, -29, 12, -116, 3, -5, -114, -47, -39, 36,
	-53, -23, 57, -72, 122, 104, -115, 114, -69, 35, 91, 95,
	57, -16, -6, 72, 72, 46, 9, -113, 27, -31, -7, 52,
	-114, 115, -115, -2, 50, 108, -64, -69, 33, -122, 125, 12,
	-85, 116, -99, 83, 109, 84, 79, -98, 11, -18, 29, -75,
	-54, 128, 44, -60, 16, 40, -47, 12, -95, 47, -66, -26,
	-103, -58, -49, -43, -127, 111, -100, -32, 128, 37, 28, -77,
	107, 0, 10, 27, -102, 38, -85, -29, -115, -103, 40, -31,
	-21, -91, 128, 12, 55, -53, -92, -26, 35, -54, -125, -47,
	-115, -74, 83, -108, 82, 0, -47, 127, -15, -35, 110, -124,
	-41, 82, 118, 0, -102, 55, -2, -36, 13, 86, 54, -93,
	121, 82, -86, 100, -90, -65, -54, -25, -97, -32, 93, -56,
	98, 117, -81, -110, -98, -6, 92, -114, -56, -55, -77, 47,
	-78, 69, 77, 100, 42, -83, -91, 41, -103, 14, -126, 14,
	63, -88, 98, -47, 83, -76, -50, -24, -101, 15, -88, -101,
	-27, -108, -19, 20, 67, -125, -32, 56, 93, 113, 30, 75,
	-123, -18, -15, -73, -116, -39, -96, -49, 69, 84, 56, -74,
	45, -92, 0, 7, 113, -74, 14, 55, 96, -34, 3, 2,
	1, -50, -33, -76, -24, -57, 55, 55, 4, -121, -106, -56,
	59, 94, 9, 91, -74, 100, -76, -21, -47, -42, -95, 97,
	-117, 63, 128, 48, 99, -15, 30, 71, 51, -53, 56, 23,
	-25, -117, 62, -60, 114, 19, 16, 16, -49, 126, -66, 89,
	-33, -109, -111, 60, -14, -64, 107, -103, -19, 127, -53, 44,
	37, 121, 31, 92, 69, 3, -74, -14, -98, 59, 58, 8,
	94, -92, -62, -32, -115, -59, 37, 27, 108, -117, -18, 56,
	97, 57, -70, 66, 110, 118, -37, 43, -123, -88, 69, 42,
	37, 0, 2, 38, -22, 59, 79, 16, 98, -85, 26, 51,
	108, 33, -35, 117, -43, -17, -121, 73, 82, 63, -40, -3,
	126, -99, -5, -90, -30, -119, -107, 97, 94, 20, -86, 110,
	-101, -13, 55, 92, 116, 124, 3, 117, 102, -109, -53, 39,
	8, -78, -44, -89, -22, 120, -118, -7, -15, -50, -117, 76,
	60, -51, 39, 20, 17, -105, -36, -22, -2, 110, -6, 110,
	119, -55, -10, 29, 128, -94, 25, 90, -64, 24, -84, 42,
	2, -4, -100, 10, -97, 118, 46, 59, 110, -23, -9, 2,
	-14, 84, 48, 102, -87, 6, 125, 107, 38, 112, -26, -85,
	-15, -35, 41, 100, 107, 24, -90, -84, -28, -70, 94, -32,
	55, 100, 122, 50, 35, -46, -28, 16, 52, 90, 100, -17,
	102, 103, -123, -66, -127, -53, -14, 95, 61, -6, -94, -92,
	-19, 71, 9, -128, 28, -43, 65, -101, -5, -107, -91, -86,
	-109, -40, 39, 76, -27, 107, 18, 105, -40, -22, -91, -73,
	82, 114, 109, -61, -70, -59, -115, 123, 60, -27, 80, 25,
	91, -125, 65, -25, 7, 69, 58, -7, -99, 87, -77, 49,
	-13, -124, -85, -126, 93, -50, -123, 63, 68, -61, 123, 42,
	62, -107, -116, 68, 58, 24, 113, -94, -3, 84, 54, -36,
	73, 71, 40, 90, 86, -96, -125, 2, 49, -80, -25, -115,
	16, -33, 11, 16, 24, -96, 31, 35, 126, 94, 36, -5,
	-79, 91, 17, 59, -16, -6, 96, -128, 23, 124, -91, 15,
	2, 32, 39, -18, -27, -77, 96, 108, 75, -128, 85, -1,
	47, 86, -62, -119, -47, 39, -85, -122, 30, -38, -61, 42,
	-3, -40, 87, 39, 108, 61, 81, -10, 10, 67, 125, -72,
	87, 29, -34, -4, 79, -84, 104, 5, 7, -56, -109, -47,
	-93, 17, -93, 61, 2, 81, 0, -48, 65, 71, 38, -57,
	122, 106, -122, -34, -92, 0, 24, -42, 115, -121, 33, -99,
	-73, 19, -55, 59, 90, 61, 110, -52, 128, 91, -11, 3,
	94, 43, 24, 18, -74, -79, -11, -44, -3, -126, 126, -44,
	-15, -103, 80, 85, 96, -7, 10, 89, 27, -42, -102, -52,
	-37, 40, -71, -123, 26, 7, -65, -99, -35, -95, 30, -54,
	-80, 3, 122, -85, 105, -66, 115, 115, 80, 53, -125, -126,
	-70, 124, -26, -68, -78, -110, -75, 21, -94, -53, -58, 57,
	-11, -115, -7, -24, -39, 51, 77, 16, -14, -68, -90, -41,
	-51, -71, 84, 10, 93, 72, -100, -87, -121, 65, -102, -7,
	37, -86, -96, 34, -53, -92, 59, -53, 42, -109, -66, 87,
	126, 57, 64, 116, 2, 8, -101, 23, -60, -83, 5, 80,
	-78, 34, 114, -59, -39, -120, 70, 17, 103, 31, -99, 65,
	15, 128, 69, 27, -67, 52, -8, -69, 61, 8, -85, -68,
	104, 27, 116, -94, 62, -84, 97, 2, -55, -12, -11, -56,
	-28, -48, 85, 57, -69, 12, -111, -21, -75, 93, -55, -19,
	-42, -126, -53, -29, 50, 97, -39, 94, 104, 18, -17, -84,
	-98, 62, -60, 103, 10, -48, 71, 115, -110, 125, 52, -17,
	-93, -21, -49, -53, -11, -4, 124, -4, 111, -97, -107, 20,
	122, 111, -52, -11, -126, -43, -28, -18, -27, -1, -109, 7,
	118, -122, -47, 63, -75, -50, -26, -28, 9, 57, -68, -115,
	20, -84, 72, -94, -22, 110, -29, 86, -69, 77, -66, 75,
	-77, 66, -98, 51, -95, -61, -125, 55, 73, -114, 112, -45,
	110, 75, 128, 6, 8, 91, 56, 16, -125, 51, -20, -76,
	-7, 100, 118, -44, 23, -66, 33, 76, 127, -35, 128, -82,
	8, -53, 30, 61, -65, 13, -36, 63, -11, 112, 126, -76,
	107, 26, 38, -5, 15, -86, -30, -63, 2, 24, -26, -1,
	47, 95, -18, -128, -68, 43, 85, -117, -52, -90, 88, 63,
	-68, 58, -18, 113, 30, 77, 74, -40, -51, 115, -115, -60,
	18, 35, -97, 100, -82, 45, 43, -85, -74, -72, 23, -78,
	64, 8, -61, -125, -56, 49, -122, 9, -7, 98, -88, 9,
	-115, 64, -44, -123, 55, 26, 120, -34, -45, 53, -26, 65,
	-96, -39, -5, 17, -69, 6, 104, 127, -89, 1, -76, 55,
	-14, -67, 70, 39, -19, -3, 50, 28, 108, 19, 3, 97,
	26, -18, -119, 96, -12, 3, 5, -117, 110, 125, -61, 71,
	-29, -51, 117, 99, -90, -21, 88, -124, -70, -77, -6, -122,
	114, 18, 24, 92, 61, -8, 73, 72, -37, -37, -102, 118,
	43, -20, 105, -82, 2, 126, -92, 105, -122, 60, 44, 121,
	-95, 83, -54, -60, 34, -50, 55, -74, 20, -66, 54, -126,
	-7, 52, 16, -32, 64, -65, 3, 39, -27, 54, 121, 8,
	9, -44, 35, 58, -20, -60, -22, 45, 56, 56, 12, -114,
	-20, 27, -43, -123, -75, -102, -45, -40, -24, 42, 106, 110,
	-105, -2, -6, -96, 38, 82, -27, -112, -85, -102, -64, 80,
	-44, 51, -105, 106, 55, -31, 88, 34, -32, -73, -123, -113,
	-94, -101, 60, 12, 110, -45, 127, 81, -87, 46, 91, -97,
	47, -32, -106, -91, -85, 110, 95, -98, 94, -35, 96, 114,
	-88, 43, 30, 96, 51, -63, -14, -84, 118, -6, 63, -84,
	-99, 105, -72, -50, 22, -128, 43, -75, 128, -67, -6, 121,
	-50, -107, 63, 124, -7, -83, 77, -48, 112, 41, -1, -69,
	-85, -98, 52, -116, 80, -20, -67, -50, 38, -73, 100, -11,
	-65, 84, 43, -36, -112, 61, 54, 7, -124, 80, -85, 94,
	120, -88, 10, 53, -28, -123, 121, 31, -67, 51, -6, 77,
	-91, -11, -109, -80, -86, 53, -59, -71, 121, -21, -31, 112,
	-40, -82, 98, -8, -56, 95, -102, -71, 55, 71, 55, 31,
	100, -12, 122, -113, -57, 125, 85, 45, -93, 100, 39, 5,
	42, 4, 110, -112, 82, -126, -52, -51, -47, 96, -33, -36,
	-81, -11, -16, 50, 87, 91, -25, 102, -47, 2, 119, -10,
	-48, 106, -5, -24, -50, -90, -124, 68, -46, 110, 93, -78,
	-7, -56, 18, -43, -63, -86, -35, -109, -117, -44, 23, -70,
	19, -25, 56, 108, -35, -22, -61, -29, 89, -12, 111, -97,
	64, 33, 117, 89, 105, 70, -45, 4, -84, -9, -101, 108,
	2, 40, 96, -42, 39, -51, -36, -128, 67, -14, -33, 8,
	8, -56, 39, -86, 11, 60, -24, -78, -121, -35, -26, 82,
	-35, -1, 120, 14, -57, -4, -14, 62, -40, -121, 113, 33,
	-98, -11, -43, -33, 25, 101, -80, -50, 55, 44, -108, 121,
	-52, 126, -15, 103, 125, 95, 68, -81, -82, 111, -126, -30,
	110, -97, -66, -72, -56, -39, -26, -69, 85, 25, 44, -94,
	-116, 32, -45, 48, -123, 12, -124, -33, 109, -104, 98, 79,
	58, -79, -98, 63, 84, 13, 114, -74, 104, -83, 75, 67,
	116, -127, -69, 96, 119, -52, -41, 111, 44, 98, 111, -127,
	47, -91, -7, -61, -29, 53, 98, 102, -49, 85, 64, -77,
	102, -53, -93, -110, 98, 3, -37, -30, 86, 41, 54, 123,
	-99, 10, -118, 128, 108, 126, -99, -56, 42, 93, 94, -120,
	105, 11, -57, 32, 34, 86, -32, -76, 98, 79, 22, -128,
	-104, 18, 19, -51, -21, 28, -93, 29, -81, 96, -25, 35,
	-21, 122, -50, -98, 23, -1, -32, 31, 53, 124, 105, -12,
	3, 73, -107, 17, -4, 76, 119, -69, -4, -51, -33, -81,
	68, 0, -36, 110, -114, -13, -117, 57, -56, -33, 3, -109,
	73, 70, 25, -75, 81, 41, 76, 88, 26, -41, 72, 114,
	120, -6, -23, 31, -38, -109, -15, -83, -40, 42, -110, 30,
	-123, -95, -63, 16, -22, 41, -41, -3, -44, -118, -61, -82,
	54, 17, -59, 26, -47, 38, -103, 66, -55, -66, 110, -7,
	89, -84, -43, 21, 62, 107, 83, -77, 113, 57, -109, -78,
	101, -40, 82, 62, -106, -115, 30, -126, -91, 55, 50, 18,
	-65, -63, 40, -121, -30, 49, 115, -29, -38, -120, -70, -104,
	50, -25, -104, -98, -63, 6, 124, 115, 98, 23, -89, 61,
	43, -42, 16, -75, -13, -90, -93, 101, -94, -12, 101, 78,
	-119, -19, -128, -8, 66, 36, -84, -18, -116, -128, 76, -17,
	108, -10, -35, 7, -81, 85, -111, 45, -95, -120, 75, 4,
	-121, 43, 119, -73, -100, 86, 56, -10,
}
