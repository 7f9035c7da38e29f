package multidim

import "coasterpaint/internal/paint"

// Straight track: flat and the 25 and 60 degree slopes with their transitions.

var flatPiece = trackPiece{
	normal: []trackTile{
		{
			sprites: [4][]trackSprite{
				{{15806, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}},
				{{15807, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}},
				{{15806, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}},
				{{15807, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}},
			},
			support:   metalA(paint.MetalSupportTubes, paint.SupportPlaceCentre, 0, 0),
			tunnels:   [4]tunnelSpec{rotated(0, paint.TunnelSquareFlat), rotated(0, paint.TunnelSquareFlat), rotated(0, paint.TunnelSquareFlat), rotated(0, paint.TunnelSquareFlat)},
			segments:  paint.SegmentsAll,
			clearance: 32,
		},
	},
	chain: []trackTile{
		{
			sprites: [4][]trackSprite{
				{{15808, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}},
				{{15809, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}},
				{{15808, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}},
				{{15809, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}},
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
				{{26227, xyz(0, 0, 24), box(0, 6, 22, 32, 20, 3)}},
				{{26228, xyz(0, 0, 24), box(0, 6, 22, 32, 20, 3)}},
				{{26227, xyz(0, 0, 24), box(0, 6, 22, 32, 20, 3)}},
				{{26228, xyz(0, 0, 24), box(0, 6, 22, 32, 20, 3)}},
			},
			support:   metalA(paint.MetalSupportTubesInverted, paint.SupportPlaceCentre, 0, 36),
			tunnels:   [4]tunnelSpec{rotated(0, paint.TunnelInvertedFlat), rotated(0, paint.TunnelInvertedFlat), rotated(0, paint.TunnelInvertedFlat), rotated(0, paint.TunnelInvertedFlat)},
			segments:  paint.SegmentsAll,
			clearance: 48,
		},
	},
}

var up25Piece = trackPiece{
	normal: []trackTile{
		{
			sprites: [4][]trackSprite{
				{{15822, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}},
				{{15823, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}},
				{{15824, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}},
				{{15825, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}},
			},
			support:   metalA(paint.MetalSupportTubes, paint.SupportPlaceCentre, 8, 0),
			tunnels:   [4]tunnelSpec{rotated(-8, paint.TunnelSquareSlopeStart), rotated(8, paint.TunnelSquareSlopeEnd), rotated(8, paint.TunnelSquareSlopeEnd), rotated(-8, paint.TunnelSquareSlopeStart)},
			segments:  paint.SegmentsAll,
			clearance: 56,
		},
	},
	chain: []trackTile{
		{
			sprites: [4][]trackSprite{
				{{15826, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}},
				{{15827, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}},
				{{15828, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}},
				{{15829, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}},
			},
			support:   metalA(paint.MetalSupportTubes, paint.SupportPlaceCentre, 8, 0),
			tunnels:   [4]tunnelSpec{rotated(-8, paint.TunnelSquareSlopeStart), rotated(8, paint.TunnelSquareSlopeEnd), rotated(8, paint.TunnelSquareSlopeEnd), rotated(-8, paint.TunnelSquareSlopeStart)},
			segments:  paint.SegmentsAll,
			clearance: 56,
		},
	},
	inverted: []trackTile{
		{
			sprites: [4][]trackSprite{
				{{26229, xyz(0, 0, 24), box(0, 6, 22, 32, 20, 3)}},
				{{26230, xyz(0, 0, 24), box(0, 6, 22, 32, 20, 3)}},
				{{26231, xyz(0, 0, 24), box(0, 6, 22, 32, 20, 3)}},
				{{26232, xyz(0, 0, 24), box(0, 6, 22, 32, 20, 3)}},
			},
			support:   metalA(paint.MetalSupportTubesInverted, paint.SupportPlaceCentre, 8, 36),
			tunnels:   [4]tunnelSpec{rotated(-8, paint.TunnelInvertedSlopeStart), rotated(8, paint.TunnelInvertedSlopeEnd), rotated(8, paint.TunnelInvertedSlopeEnd), rotated(-8, paint.TunnelInvertedSlopeStart)},
			segments:  paint.SegmentsAll,
			clearance: 72,
		},
	},
}

var up60Piece = trackPiece{
	normal: []trackTile{
		{
			sprites: [4][]trackSprite{
				{{15830, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}},
				{{15831, xyz(0, 0, 0), box(0, 27, 0, 32, 1, 98)}},
				{{15832, xyz(0, 0, 0), box(0, 27, 0, 32, 1, 98)}},
				{{15833, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}},
			},
			support:   metalA(paint.MetalSupportTubes, paint.SupportPlaceCentre, 32, 0),
			tunnels:   [4]tunnelSpec{rotated(-8, paint.TunnelSquareSlopeStart), rotated(56, paint.TunnelSquareSlopeEnd), rotated(56, paint.TunnelSquareSlopeEnd), rotated(-8, paint.TunnelSquareSlopeStart)},
			segments:  paint.SegmentsAll,
			clearance: 104,
		},
	},
	chain: []trackTile{
		{
			sprites: [4][]trackSprite{
				{{15834, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}},
				{{15835, xyz(0, 0, 0), box(0, 27, 0, 32, 1, 98)}},
				{{15836, xyz(0, 0, 0), box(0, 27, 0, 32, 1, 98)}},
				{{15837, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}},
			},
			support:   metalA(paint.MetalSupportTubes, paint.SupportPlaceCentre, 32, 0),
			tunnels:   [4]tunnelSpec{rotated(-8, paint.TunnelSquareSlopeStart), rotated(56, paint.TunnelSquareSlopeEnd), rotated(56, paint.TunnelSquareSlopeEnd), rotated(-8, paint.TunnelSquareSlopeStart)},
			segments:  paint.SegmentsAll,
			clearance: 104,
		},
	},
	inverted: []trackTile{
		{
			sprites: [4][]trackSprite{
				{{26233, xyz(0, 0, 24), box(0, 6, 22, 32, 20, 3)}},
				{{26234, xyz(0, 0, 24), box(0, 27, 22, 32, 1, 98)}},
				{{26235, xyz(0, 0, 24), box(0, 27, 22, 32, 1, 98)}},
				{{26236, xyz(0, 0, 24), box(0, 6, 22, 32, 20, 3)}},
			},
			support:   metalA(paint.MetalSupportTubesInverted, paint.SupportPlaceCentre, 32, 36),
			tunnels:   [4]tunnelSpec{rotated(-8, paint.TunnelInvertedSlopeStart), rotated(56, paint.TunnelInvertedSlopeEnd), rotated(56, paint.TunnelInvertedSlopeEnd), rotated(-8, paint.TunnelInvertedSlopeStart)},
			segments:  paint.SegmentsAll,
			clearance: 120,
		},
	},
}

var flatToUp25Piece = trackPiece{
	normal: []trackTile{
		{
			sprites: [4][]trackSprite{
				{{15838, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}},
				{{15839, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}},
				{{15840, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}},
				{{15841, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}},
			},
			support:   metalA(paint.MetalSupportTubes, paint.SupportPlaceCentre, 3, 0),
			tunnels:   [4]tunnelSpec{rotated(0, paint.TunnelSquareFlat), rotated(8, paint.TunnelSquareSlopeEnd), rotated(8, paint.TunnelSquareSlopeEnd), rotated(0, paint.TunnelSquareFlat)},
			segments:  paint.SegmentsAll,
			clearance: 48,
		},
	},
	chain: []trackTile{
		{
			sprites: [4][]trackSprite{
				{{15842, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}},
				{{15843, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}},
				{{15844, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}},
				{{15845, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}},
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
				{{26237, xyz(0, 0, 24), box(0, 6, 22, 32, 20, 3)}},
				{{26238, xyz(0, 0, 24), box(0, 6, 22, 32, 20, 3)}},
				{{26239, xyz(0, 0, 24), box(0, 6, 22, 32, 20, 3)}},
				{{26240, xyz(0, 0, 24), box(0, 6, 22, 32, 20, 3)}},
			},
			support:   metalA(paint.MetalSupportTubesInverted, paint.SupportPlaceCentre, 3, 36),
			tunnels:   [4]tunnelSpec{rotated(0, paint.TunnelInvertedFlat), rotated(8, paint.TunnelInvertedSlopeEnd), rotated(8, paint.TunnelInvertedSlopeEnd), rotated(0, paint.TunnelInvertedFlat)},
			segments:  paint.SegmentsAll,
			clearance: 64,
		},
	},
}

var up25ToUp60Piece = trackPiece{
	normal: []trackTile{
		{
			sprites: [4][]trackSprite{
				{{15846, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}},
				{{15847, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}, {15848, xyz(0, 0, 0), box(0, 27, 0, 32, 1, 66)}},
				{{15849, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}, {15850, xyz(0, 0, 0), box(0, 27, 0, 32, 1, 66)}},
				{{15851, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}},
			},
			support:   metalA(paint.MetalSupportTubes, paint.SupportPlaceCentre, 12, 0),
			tunnels:   [4]tunnelSpec{rotated(-8, paint.TunnelSquareSlopeStart), rotated(24, paint.TunnelSquareSlopeEnd), rotated(24, paint.TunnelSquareSlopeEnd), rotated(-8, paint.TunnelSquareSlopeStart)},
			segments:  paint.SegmentsAll,
			clearance: 72,
		},
	},
	chain: []trackTile{
		{
			sprites: [4][]trackSprite{
				{{15852, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}},
				{{15853, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}, {15854, xyz(0, 0, 0), box(0, 27, 0, 32, 1, 66)}},
				{{15855, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}, {15856, xyz(0, 0, 0), box(0, 27, 0, 32, 1, 66)}},
				{{15857, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}},
			},
			support:   metalA(paint.MetalSupportTubes, paint.SupportPlaceCentre, 12, 0),
			tunnels:   [4]tunnelSpec{rotated(-8, paint.TunnelSquareSlopeStart), rotated(24, paint.TunnelSquareSlopeEnd), rotated(24, paint.TunnelSquareSlopeEnd), rotated(-8, paint.TunnelSquareSlopeStart)},
			segments:  paint.SegmentsAll,
			clearance: 72,
		},
	},
	inverted: []trackTile{
		{
			sprites: [4][]trackSprite{
				{{26241, xyz(0, 0, 24), box(0, 6, 22, 32, 20, 3)}},
				{{26242, xyz(0, 0, 24), box(0, 6, 22, 32, 20, 3)}, {26243, xyz(0, 0, 24), box(0, 27, 22, 32, 1, 66)}},
				{{26244, xyz(0, 0, 24), box(0, 6, 22, 32, 20, 3)}, {26245, xyz(0, 0, 24), box(0, 27, 22, 32, 1, 66)}},
				{{26246, xyz(0, 0, 24), box(0, 6, 22, 32, 20, 3)}},
			},
			support:   metalA(paint.MetalSupportTubesInverted, paint.SupportPlaceCentre, 12, 36),
			tunnels:   [4]tunnelSpec{rotated(-8, paint.TunnelInvertedSlopeStart), rotated(24, paint.TunnelInvertedSlopeEnd), rotated(24, paint.TunnelInvertedSlopeEnd), rotated(-8, paint.TunnelInvertedSlopeStart)},
			segments:  paint.SegmentsAll,
			clearance: 88,
		},
	},
}

var up60ToUp25Piece = trackPiece{
	normal: []trackTile{
		{
			sprites: [4][]trackSprite{
				{{15858, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}},
				{{15859, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}, {15860, xyz(0, 0, 0), box(0, 27, 0, 32, 1, 66)}},
				{{15861, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}, {15862, xyz(0, 0, 0), box(0, 27, 0, 32, 1, 66)}},
				{{15863, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}},
			},
			support:   metalA(paint.MetalSupportTubes, paint.SupportPlaceCentre, 20, 0),
			tunnels:   [4]tunnelSpec{rotated(-8, paint.TunnelSquareSlopeStart), rotated(24, paint.TunnelSquareSlopeEnd), rotated(24, paint.TunnelSquareSlopeEnd), rotated(-8, paint.TunnelSquareSlopeStart)},
			segments:  paint.SegmentsAll,
			clearance: 72,
		},
	},
	chain: []trackTile{
		{
			sprites: [4][]trackSprite{
				{{15864, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}},
				{{15865, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}, {15866, xyz(0, 0, 0), box(0, 27, 0, 32, 1, 66)}},
				{{15867, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}, {15868, xyz(0, 0, 0), box(0, 27, 0, 32, 1, 66)}},
				{{15869, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}},
			},
			support:   metalA(paint.MetalSupportTubes, paint.SupportPlaceCentre, 20, 0),
			tunnels:   [4]tunnelSpec{rotated(-8, paint.TunnelSquareSlopeStart), rotated(24, paint.TunnelSquareSlopeEnd), rotated(24, paint.TunnelSquareSlopeEnd), rotated(-8, paint.TunnelSquareSlopeStart)},
			segments:  paint.SegmentsAll,
			clearance: 72,
		},
	},
	inverted: []trackTile{
		{
			sprites: [4][]trackSprite{
				{{26247, xyz(0, 0, 24), box(0, 6, 22, 32, 20, 3)}},
				{{26248, xyz(0, 0, 24), box(0, 6, 22, 32, 20, 3)}, {26249, xyz(0, 0, 24), box(0, 27, 22, 32, 1, 66)}},
				{{26250, xyz(0, 0, 24), box(0, 6, 22, 32, 20, 3)}, {26251, xyz(0, 0, 24), box(0, 27, 22, 32, 1, 66)}},
				{{26252, xyz(0, 0, 24), box(0, 6, 22, 32, 20, 3)}},
			},
			support:   metalA(paint.MetalSupportTubesInverted, paint.SupportPlaceCentre, 20, 36),
			tunnels:   [4]tunnelSpec{rotated(-8, paint.TunnelInvertedSlopeStart), rotated(24, paint.TunnelInvertedSlopeEnd), rotated(24, paint.TunnelInvertedSlopeEnd), rotated(-8, paint.TunnelInvertedSlopeStart)},
			segments:  paint.SegmentsAll,
			clearance: 88,
		},
	},
}

var up25ToFlatPiece = trackPiece{
	normal: []trackTile{
		{
			sprites: [4][]trackSprite{
				{{15870, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}},
				{{15871, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}},
				{{15872, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}},
				{{15873, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}},
			},
			support:   metalA(paint.MetalSupportTubes, paint.SupportPlaceCentre, 6, 0),
			tunnels:   [4]tunnelSpec{rotated(-8, paint.TunnelSquareFlat), rotated(8, paint.TunnelSquareFlatTo25Deg), rotated(8, paint.TunnelSquareFlatTo25Deg), rotated(-8, paint.TunnelSquareFlat)},
			segments:  paint.SegmentsAll,
			clearance: 40,
		},
	},
	chain: []trackTile{
		{
			sprites: [4][]trackSprite{
				{{15874, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}},
				{{15875, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}},
				{{15876, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}},
				{{15877, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}},
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
				{{26253, xyz(0, 0, 24), box(0, 6, 22, 32, 20, 3)}},
				{{26254, xyz(0, 0, 24), box(0, 6, 22, 32, 20, 3)}},
				{{26255, xyz(0, 0, 24), box(0, 6, 22, 32, 20, 3)}},
				{{26256, xyz(0, 0, 24), box(0, 6, 22, 32, 20, 3)}},
			},
			support:   metalA(paint.MetalSupportTubesInverted, paint.SupportPlaceCentre, 6, 36),
			tunnels:   [4]tunnelSpec{rotated(-8, paint.TunnelInvertedFlat), rotated(8, paint.TunnelInvertedFlatTo25Deg), rotated(8, paint.TunnelInvertedFlatTo25Deg), rotated(-8, paint.TunnelInvertedFlat)},
			segments:  paint.SegmentsAll,
			clearance: 56,
		},
	},
}
