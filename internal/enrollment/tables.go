package enrollment

// Yearly enrollment tables for 2013 through 2022. Each table lists grade 10,
// 11 and 12 counts for every school in directory order; -1 marks a missing count.
var year2013 = []float64{
	536, 553, 498,
	-1, -1, -1,
	50, 42, 43,
	216, 223, 188,
	446, 427, 456,
	433, 392, 374,
	579, 576, 534,
	344, 318, 306,
	485, 470, 441,
	525, 521, 459,
	526, 493, 499,
	46, 75, 66,
	411, 417, 401,
	322, 305, 320,
	576, 551, 514,
	99, 117, 111,
	555, 565, 543,
	590, 589, 582,
	529, 492, 474,
	462, 439, 426,
}

var year2014 = []float64{
	587, 560, 524,
	-1, -1, -1,
	35, 61, 29,
	251, 226, 214,
	495, 457, 445,
	417, 425, 368,
	603, 577, 572,
	324, 328, 323,
	501, 476, 424,
	514, 516, 485,
	542, 514, 469,
	62, -1, 70,
	430, 395, 407,
	344, 298, 302,
	574, 541, 531,
	135, 112, 100,
	577, 586, 549,
	612, 603, 549,
	503, 504, 463,
	476, 438, 462,
}

var year2015 = []float64{
	598, 571, 539,
	-1, -1, -1,
	29, 42, 48,
	221, 229, 194,
	471, 489, 448,
	408, 433, 414,
	608, 573, 538,
	329, 348, 298,
	513, 498, 463,
	527, 506, 508,
	538, 499, 502,
	32, 30, 36,
	434, 410, 370,
	323, 314, 319,
	552, 532, 525,
	137, 128, 105,
	620, 581, 553,
	607, 600, 588,
	548, 486, 505,
	498, 448, 466,
}

var year2016 = []float64{
	600, 567, 536,
	-1, -1, -1,
	39, 22, 38,
	251, 246, 196,
	496, 479, 472,
	425, 441, 428,
	607, 575, 555,
	340, 320, 333,
	485, 493, 446,
	546, 525, 503,
	547, 551, 519,
	36, 38, 66,
	443, 419, 402,
	341, 316, 341,
	586, 536, 562,
	123, 123, -1,
	621, 574, 579,
	654, 605, 602,
	547, 498, 503,
	509, 474, 437,
}

var year2017 = []float64{
	593, 545, 558,
	-1, -1, -1,
	49, 27, 39,
	264, 233, 234,
	517, 484, 463,
	433, 412, 423,
	622, 578, 582,
	369, 329, 304,
	496, 468, 482,
	568, 506, 527,
	568, 530, 516,
	51, 45, 47,
	423, 435, 417,
	359, 311, 324,
	595, 573, 560,
	98, 127, 115,
	616, 565, 572,
	666, 618, 579,
	518, 522, 478,
	499, 468, 454,
}

var year2018 = []float64{
	587, 588, 553,
	-1, -1, -1,
	28, 22, 49,
	227, 233, 203,
	527, 503, 480,
	452, 453, 390,
	626, 623, 576,
	363, 341, 331,
	522, 489, 458,
	558, 545, 527,
	556, 554, 520,
	58, 60, 58,
	449, 425, 427,
	356, 336, 313,
	595, 595, 546,
	107, 134, 128,
	625, 614, 587,
	654, 606, 604,
	556, 517, 481,
	494, 463, 467,
}

var year2019 = []float64{
	608, 570, 583,
	326, 327, 299,
	42, 37, 32,
	256, 245, 224,
	509, 477, 483,
	460, 430, 438,
	646, 608, 594,
	364, 370, 341,
	526, 504, 482,
	564, 565, 529,
	587, 563, 519,
	66, 58, 40,
	445, 432, 434,
	376, 349, 321,
	594, 597, 569,
	143, 126, 92,
	625, 601, 582,
	670, 634, 629,
	558, 556, 509,
	521, 486, 472,
}

var year2020 = []float64{
	603, 593, 590,
	407, 385, 381,
	31, 66, 37,
	265, 224, 224,
	527, 489, 475,
	453, 431, 418,
	673, 639, 591,
	368, 336, 341,
	547, 531, 474,
	559, 532, 528,
	608, 577, 536,
	78, 72, 37,
	464, 412, 439,
	364, 355, 327,
	639, 572, 544,
	-1, 94, 129,
	649, 611, 588,
	655, 633, 642,
	582, 536, 511,
	499, 490, 463,
}

var year2021 = []float64{
	633, 626, 592,
	471, 469, 452,
	41, 63, 31,
	256, 245, 212,
	518, 492, 471,
	461, 467, 410,
	635, 620, 603,
	370, 352, 324,
	543, 530, 499,
	575, 538, 542,
	591, 575, 571,
	66, 83, 57,
	446, 455, 403,
	372, 336, 345,
	644, 614, 600,
	99, 103, 125,
	661, 609, 595,
	659, 634, 653,
	577, 534, 528,
	545, 480, 464,
}

var year2022 = []float64{
	621, 631, 559,
	519, 503, 520,
	44, 50, 40,
	273, 244, 262,
	511, 537, 485,
	487, 454, 443,
	677, 629, 595,
	389, 340, 333,
	539, 529, 510,
	615, 560, 546,
	590, 600, 534,
	47, 35, 76,
	464, 430, 430,
	393, 384, 353,
	632, 634, 603,
	108, 111, 90,
	638, 629, 616,
	716, 678, 644,
	559, 545, 519,
	545, 490, 467,
}

// DefaultTables returns the compiled-in yearly tables in year order.
func DefaultTables() [][]float64 {
	return [][]float64{
		year2013,
		year2014,
		year2015,
		year2016,
		year2017,
		year2018,
		year2019,
		year2020,
		year2021,
		year2022,
	}
}
