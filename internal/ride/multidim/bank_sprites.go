package multidim

import "coasterpaint/internal/paint"

// Flat and 25 degree banking transitions.

var flatToLeftBankPiece = trackPiece{
	normal: []trackTile{
		{
			sprites: [4][]trackSprite{
				{{15878, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}, {15879, xyz(0, 0, 0), box(0, 27, 0, 32, 1, 26)}},
				{{15880, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}, {15881, xyz(0, 0, 0), box(0, 27, 0, 32, 1, 26)}},
				{{15882, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}},
				{{15883, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}},
			},
			support:   metalA(paint.MetalSupportTubes, paint.SupportPlaceCentre, 0, 0),
			tunnels:   [4]tunnelSpec{rotated(0, paint.TunnelSquareFlat), rotated(0, paint.TunnelSquareFlat), rotated(0, paint.TunnelSquareFlat), rotated(0, paint.TunnelSquareFlat)},
			segments:  paint.SegmentsAll,
			clearance: 32,
		},
	},
	inverted: []trackTile{
		{
			sprites: [4][]trackSprite{
				{{26257, xyz(0, 0, 24), box(0, 6, 22, 32, 20, 3)}, {26258, xyz(0, 0, 24), box(0, 27, 22, 32, 1, 26)}},
				{{26259, xyz(0, 0, 24), box(0, 6, 22, 32, 20, 3)}, {26260, xyz(0, 0, 24), box(0, 27, 22, 32, 1, 26)}},
				{{26261, xyz(0, 0, 24), box(0, 6, 22, 32, 20, 3)}},
				{{26262, xyz(0, 0, 24), box(0, 6, 22, 32, 20, 3)}},
			},
			support:   metalA(paint.MetalSupportTubesInverted, paint.SupportPlaceCentre, 0, 36),
			tunnels:   [4]tunnelSpec{rotated(0, paint.TunnelInvertedFlat), rotated(0, paint.TunnelInvertedFlat), rotated(0, paint.TunnelInvertedFlat), rotated(0, paint.TunnelInvertedFlat)},
			segments:  paint.SegmentsAll,
			clearance: 48,
		},
	},
}

var flatToRightBankPiece = trackPiece{
	normal: []trackTile{
		{
			sprites: [4][]trackSprite{
				{{15884, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}},
				{{15885, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}},
				{{15886, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}, {15887, xyz(0, 0, 0), box(0, 27, 0, 32, 1, 26)}},
				{{15888, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}, {15889, xyz(0, 0, 0), box(0, 27, 0, 32, 1, 26)}},
			},
			support:   metalA(paint.MetalSupportTubes, paint.SupportPlaceCentre, 0, 0),
			tunnels:   [4]tunnelSpec{rotated(0, paint.TunnelSquareFlat), rotated(0, paint.TunnelSquareFlat), rotated(0, paint.TunnelSquareFlat), rotated(0, paint.TunnelSquareFlat)},
			segments:  paint.SegmentsAll,
			clearance: 32,
		},
	},
	inverted: []trackTile{
		{
			sprites: [4][]trackSprite{
				{{26263, xyz(0, 0, 24), box(0, 6, 22, 32, 20, 3)}},
				{{26264, xyz(0, 0, 24), box(0, 6, 22, 32, 20, 3)}},
				{{26265, xyz(0, 0, 24), box(0, 6, 22, 32, 20, 3)}, {26266, xyz(0, 0, 24), box(0, 27, 22, 32, 1, 26)}},
				{{26267, xyz(0, 0, 24), box(0, 6, 22, 32, 20, 3)}, {26268, xyz(0, 0, 24), box(0, 27, 22, 32, 1, 26)}},
			},
			support:   metalA(paint.MetalSupportTubesInverted, paint.SupportPlaceCentre, 0, 36),
			tunnels:   [4]tunnelSpec{rotated(0, paint.TunnelInvertedFlat), rotated(0, paint.TunnelInvertedFlat), rotated(0, paint.TunnelInvertedFlat), rotated(0, paint.TunnelInvertedFlat)},
			segments:  paint.SegmentsAll,
			clearance: 48,
		},
	},
}

var leftBankPiece = trackPiece{
	normal: []trackTile{
		{
			sprites: [4][]trackSprite{
				{{15890, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}},
				{{15891, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}},
				{{15892, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}},
				{{15893, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}},
			},
			support:   metalA(paint.MetalSupportTubes, paint.SupportPlaceCentre, 0, 0),
			tunnels:   [4]tunnelSpec{rotated(0, paint.TunnelSquareFlat), rotated(0, paint.TunnelSquareFlat), rotated(0, paint.TunnelSquareFlat), rotated(0, paint.TunnelSquareFlat)},
			segments:  paint.SegmentsAll,
			clearance: 32,
		},
	},
	inverted: []trackTile{
		{
			sprites: [4][]trackSprite{
				{{26269, xyz(0, 0, 24), box(0, 6, 22, 32, 20, 3)}},
				{{26270, xyz(0, 0, 24), box(0, 6, 22, 32, 20, 3)}},
				{{26271, xyz(0, 0, 24), box(0, 6, 22, 32, 20, 3)}},
				{{26272, xyz(0, 0, 24), box(0, 6, 22, 32, 20, 3)}},
			},
			support:   metalA(paint.MetalSupportTubesInverted, paint.SupportPlaceCentre, 0, 36),
			tunnels:   [4]tunnelSpec{rotated(0, paint.TunnelInvertedFlat), rotated(0, paint.TunnelInvertedFlat), rotated(0, paint.TunnelInvertedFlat), rotated(0, paint.TunnelInvertedFlat)},
			segments:  paint.SegmentsAll,
			clearance: 48,
		},
	},
}

var leftBankToUp25Piece = trackPiece{
	normal: []trackTile{
		{
			sprites: [4][]trackSprite{
				{{15894, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}, {15895, xyz(0, 0, 0), box(0, 27, 0, 32, 1, 34)}},
				{{15896, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}, {15897, xyz(0, 0, 0), box(0, 27, 0, 32, 1, 34)}},
				{{15898, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}},
				{{15899, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}},
			},
			support:   metalA(paint.MetalSupportTubes, paint.SupportPlaceCentre, 3, 0),
			tunnels:   [4]tunnelSpec{rotated(0, paint.TunnelSquareFlat), rotated(8, paint.TunnelSquareSlopeEnd), rotated(8, paint.TunnelSquareSlopeEnd), rotated(0, paint.TunnelSquareFlat)},
			segments:  paint.SegmentsAll,
			clearance: 48,
		},
	},
	inverted: []trackTile{
		{
			sprites: [4][]trackSprite{
				{{26273, xyz(0, 0, 24), box(0, 6, 22, 32, 20, 3)}, {26274, xyz(0, 0, 24), box(0, 27, 22, 32, 1, 34)}},
				{{26275, xyz(0, 0, 24), box(0, 6, 22, 32, 20, 3)}, {26276, xyz(0, 0, 24), box(0, 27, 22, 32, 1, 34)}},
				{{26277, xyz(0, 0, 24), box(0, 6, 22, 32, 20, 3)}},
				{{26278, xyz(0, 0, 24), box(0, 6, 22, 32, 20, 3)}},
			},
			support:   metalA(paint.MetalSupportTubesInverted, paint.SupportPlaceCentre, 3, 36),
			tunnels:   [4]tunnelSpec{rotated(0, paint.TunnelInvertedFlat), rotated(8, paint.TunnelInvertedSlopeEnd), rotated(8, paint.TunnelInvertedSlopeEnd), rotated(0, paint.TunnelInvertedFlat)},
			segments:  paint.SegmentsAll,
			clearance: 64,
		},
	},
}

var rightBankToUp25Piece = trackPiece{
	normal: []trackTile{
		{
			sprites: [4][]trackSprite{
				{{15900, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}},
				{{15901, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}},
				{{15902, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}, {15903, xyz(0, 0, 0), box(0, 27, 0, 32, 1, 34)}},
				{{15904, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}, {15905, xyz(0, 0, 0), box(0, 27, 0, 32, 1, 34)}},
			},
			support:   metalA(paint.MetalSupportTubes, paint.SupportPlaceCentre, 3, 0),
			tunnels:   [4]tunnelSpec{rotated(0, paint.TunnelSquareFlat), rotated(8, paint.TunnelSquareSlopeEnd), rotated(8, paint.TunnelSquareSlopeEnd), rotated(0, paint.TunnelSquareFlat)},
			segments:  paint.SegmentsAll,
			clearance: 48,
		},
	},
	inverted: []trackTile{
		{
			sprites: [4][]trackSprite{
				{{26279, xyz(0, 0, 24), box(0, 6, 22, 32, 20, 3)}},
				{{26280, xyz(0, 0, 24), box(0, 6, 22, 32, 20, 3)}},
				{{26281, xyz(0, 0, 24), box(0, 6, 22, 32, 20, 3)}, {26282, xyz(0, 0, 24), box(0, 27, 22, 32, 1, 34)}},
				{{26283, xyz(0, 0, 24), box(0, 6, 22, 32, 20, 3)}, {26284, xyz(0, 0, 24), box(0, 27, 22, 32, 1, 34)}},
			},
			support:   metalA(paint.MetalSupportTubesInverted, paint.SupportPlaceCentre, 3, 36),
			tunnels:   [4]tunnelSpec{rotated(0, paint.TunnelInvertedFlat), rotated(8, paint.TunnelInvertedSlopeEnd), rotated(8, paint.TunnelInvertedSlopeEnd), rotated(0, paint.TunnelInvertedFlat)},
			segments:  paint.SegmentsAll,
			clearance: 64,
		},
	},
}

var up25ToLeftBankPiece = trackPiece{
	normal: []trackTile{
		{
			sprites: [4][]trackSprite{
				{{15906, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}, {15907, xyz(0, 0, 0), box(0, 27, 0, 32, 1, 34)}},
				{{15908, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}, {15909, xyz(0, 0, 0), box(0, 27, 0, 32, 1, 34)}},
				{{15910, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}},
				{{15911, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}},
			},
			support:   metalA(paint.MetalSupportTubes, paint.SupportPlaceCentre, 6, 0),
			tunnels:   [4]tunnelSpec{rotated(-8, paint.TunnelSquareFlat), rotated(8, paint.TunnelSquareFlatTo25Deg), rotated(8, paint.TunnelSquareFlatTo25Deg), rotated(-8, paint.TunnelSquareFlat)},
			segments:  paint.SegmentsAll,
			clearance: 40,
		},
	},
	inverted: []trackTile{
		{
			sprites: [4][]trackSprite{
				{{26285, xyz(0, 0, 24), box(0, 6, 22, 32, 20, 3)}, {26286, xyz(0, 0, 24), box(0, 27, 22, 32, 1, 34)}},
				{{26287, xyz(0, 0, 24), box(0, 6, 22, 32, 20, 3)}, {26288, xyz(0, 0, 24), box(0, 27, 22, 32, 1, 34)}},
				{{26289, xyz(0, 0, 24), box(0, 6, 22, 32, 20, 3)}},
				{{26290, xyz(0, 0, 24), box(0, 6, 22, 32, 20, 3)}},
			},
			support:   metalA(paint.MetalSupportTubesInverted, paint.SupportPlaceCentre, 6, 36),
			tunnels:   [4]tunnelSpec{rotated(-8, paint.TunnelInvertedFlat), rotated(8, paint.TunnelInvertedFlatTo25Deg), rotated(8, paint.TunnelInvertedFlatTo25Deg), rotated(-8, paint.TunnelInvertedFlat)},
			segments:  paint.SegmentsAll,
			clearance: 56,
		},
	},
}

var up25ToRightBankPiece = trackPiece{
	normal: []trackTile{
		{
			sprites: [4][]trackSprite{
				{{15912, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}},
				{{15913, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}},
				{{15914, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}, {15915, xyz(0, 0, 0), box(0, 27, 0, 32, 1, 34)}},
				{{15916, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}, {15917, xyz(0, 0, 0), box(0, 27, 0, 32, 1, 34)}},
			},
			support:   metalA(paint.MetalSupportTubes, paint.SupportPlaceCentre, 6, 0),
			tunnels:   [4]tunnelSpec{rotated(-8, paint.TunnelSquareFlat), rotated(8, paint.TunnelSquareFlatTo25Deg), rotated(8, paint.TunnelSquareFlatTo25Deg), rotated(-8, paint.TunnelSquareFlat)},
			segments:  paint.SegmentsAll,
			clearance: 40,
		},
	},
	inverted: []trackTile{
		{
			sprites: [4][]trackSprite{
				{{26291, xyz(0, 0, 24), box(0, 6, 22, 32, 20, 3)}},
				{{26292, xyz(0, 0, 24), box(0, 6, 22, 32, 20, 3)}},
				{{26293, xyz(0, 0, 24), box(0, 6, 22, 32, 20, 3)}, {26294, xyz(0, 0, 24), box(0, 27, 22, 32, 1, 34)}},
				{{26295, xyz(0, 0, 24), box(0, 6, 22, 32, 20, 3)}, {26296, xyz(0, 0, 24), box(0, 27, 22, 32, 1, 34)}},
			},
			support:   metalA(paint.MetalSupportTubesInverted, paint.SupportPlaceCentre, 6, 36),
			tunnels:   [4]tunnelSpec{rotated(-8, paint.TunnelInvertedFlat), rotated(8, paint.TunnelInvertedFlatTo25Deg), rotated(8, paint.TunnelInvertedFlatTo25Deg), rotated(-8, paint.TunnelInvertedFlat)},
			segments:  paint.SegmentsAll,
			clearance: 56,
		},
	},
}
