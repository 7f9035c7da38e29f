package multidim

import "coasterpaint/internal/paint"

// Diagonal track. Each diagonal piece covers four tiles and only one
// direction draws on each of them.

var diagFlatPiece = trackPiece{
	normal: []trackTile{
		{ // 0
			sprites: [4][]trackSprite{
				{},
				{},
				{},
				{{16302, xyz(-16, -16, 0), box(-16, -16, 0, 32, 32, 3)}},
			},
			segments:  paint.SegmentBC | paint.SegmentC4 | paint.SegmentCC | paint.SegmentD4,
			clearance: 32,
		},
		{ // 1
			sprites: [4][]trackSprite{
				{{16303, xyz(-16, -16, 0), box(-16, -16, 0, 32, 32, 3)}},
				{},
				{},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubes, [4]int8{1, 0, 2, 3}, 0, 0),
			segments:  paint.SegmentB4 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentCC,
			clearance: 32,
		},
		{ // 2
			sprites: [4][]trackSprite{
				{},
				{},
				{{16304, xyz(-16, -16, 0), box(-16, -16, 0, 32, 32, 3)}},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubes, [4]int8{2, 3, 1, 0}, 0, 0),
			segments:  paint.SegmentC0 | paint.SegmentC4 | paint.SegmentD0 | paint.SegmentD4,
			clearance: 32,
		},
		{ // 3
			sprites: [4][]trackSprite{
				{},
				{{16305, xyz(-16, -16, 0), box(-16, -16, 0, 32, 32, 3)}},
				{},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubes, [4]int8{0, 1, 3, 2}, 0, 0),
			segments:  paint.SegmentB8 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentD0,
			clearance: 32,
		},
	},
	chain: []trackTile{
		{ // 0
			sprites: [4][]trackSprite{
				{},
				{},
				{},
				{{16306, xyz(-16, -16, 0), box(-16, -16, 0, 32, 32, 3)}},
			},
			segments:  paint.SegmentBC | paint.SegmentC4 | paint.SegmentCC | paint.SegmentD4,
			clearance: 32,
		},
		{ // 1
			sprites: [4][]trackSprite{
				{{16307, xyz(-16, -16, 0), box(-16, -16, 0, 32, 32, 3)}},
				{},
				{},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubes, [4]int8{1, 0, 2, 3}, 0, 0),
			segments:  paint.SegmentB4 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentCC,
			clearance: 32,
		},
		{ // 2
			sprites: [4][]trackSprite{
				{},
				{},
				{{16308, xyz(-16, -16, 0), box(-16, -16, 0, 32, 32, 3)}},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubes, [4]int8{2, 3, 1, 0}, 0, 0),
			segments:  paint.SegmentC0 | paint.SegmentC4 | paint.SegmentD0 | paint.SegmentD4,
			clearance: 32,
		},
		{ // 3
			sprites: [4][]trackSprite{
				{},
				{{16309, xyz(-16, -16, 0), box(-16, -16, 0, 32, 32, 3)}},
				{},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubes, [4]int8{0, 1, 3, 2}, 0, 0),
			segments:  paint.SegmentB8 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentD0,
			clearance: 32,
		},
	},
	inverted: []trackTile{
		{ // 0
			sprites: [4][]trackSprite{
				{},
				{},
				{},
				{{26681, xyz(-16, -16, 24), box(-16, -16, 22, 32, 32, 3)}},
			},
			segments:  paint.SegmentBC | paint.SegmentC4 | paint.SegmentCC | paint.SegmentD4,
			clearance: 48,
		},
		{ // 1
			sprites: [4][]trackSprite{
				{{26682, xyz(-16, -16, 24), box(-16, -16, 22, 32, 32, 3)}},
				{},
				{},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubesInverted, [4]int8{1, 0, 2, 3}, 0, 36),
			segments:  paint.SegmentB4 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentCC,
			clearance: 48,
		},
		{ // 2
			sprites: [4][]trackSprite{
				{},
				{},
				{{26683, xyz(-16, -16, 24), box(-16, -16, 22, 32, 32, 3)}},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubesInverted, [4]int8{2, 3, 1, 0}, 0, 36),
			segments:  paint.SegmentC0 | paint.SegmentC4 | paint.SegmentD0 | paint.SegmentD4,
			clearance: 48,
		},
		{ // 3
			sprites: [4][]trackSprite{
				{},
				{{26684, xyz(-16, -16, 24), box(-16, -16, 22, 32, 32, 3)}},
				{},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubesInverted, [4]int8{0, 1, 3, 2}, 0, 36),
			segments:  paint.SegmentB8 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentD0,
			clearance: 48,
		},
	},
}

var diagUp25Piece = trackPiece{
	normal: []trackTile{
		{ // 0
			sprites: [4][]trackSprite{
				{},
				{},
				{},
				{{16310, xyz(-16, -16, 0), box(-16, -16, 0, 32, 32, 3)}},
			},
			segments:  paint.SegmentBC | paint.SegmentC4 | paint.SegmentCC | paint.SegmentD4,
			clearance: 56,
		},
		{ // 1
			sprites: [4][]trackSprite{
				{{16311, xyz(-16, -16, 0), box(-16, -16, 0, 32, 32, 3)}},
				{},
				{},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubes, [4]int8{1, 0, 2, 3}, 8, 0),
			segments:  paint.SegmentB4 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentCC,
			clearance: 56,
		},
		{ // 2
			sprites: [4][]trackSprite{
				{},
				{},
				{{16312, xyz(-16, -16, 0), box(-16, -16, 0, 32, 32, 3)}},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubes, [4]int8{2, 3, 1, 0}, 8, 0),
			segments:  paint.SegmentC0 | paint.SegmentC4 | paint.SegmentD0 | paint.SegmentD4,
			clearance: 56,
		},
		{ // 3
			sprites: [4][]trackSprite{
				{},
				{{16313, xyz(-16, -16, 0), box(-16, -16, 0, 32, 32, 3)}},
				{},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubes, [4]int8{0, 1, 3, 2}, 8, 0),
			segments:  paint.SegmentB8 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentD0,
			clearance: 56,
		},
	},
	chain: []trackTile{
		{ // 0
			sprites: [4][]trackSprite{
				{},
				{},
				{},
				{{16314, xyz(-16, -16, 0), box(-16, -16, 0, 32, 32, 3)}},
			},
			segments:  paint.SegmentBC | paint.SegmentC4 | paint.SegmentCC | paint.SegmentD4,
			clearance: 56,
		},
		{ // 1
			sprites: [4][]trackSprite{
				{{16315, xyz(-16, -16, 0), box(-16, -16, 0, 32, 32, 3)}},
				{},
				{},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubes, [4]int8{1, 0, 2, 3}, 8, 0),
			segments:  paint.SegmentB4 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentCC,
			clearance: 56,
		},
		{ // 2
			sprites: [4][]trackSprite{
				{},
				{},
				{{16316, xyz(-16, -16, 0), box(-16, -16, 0, 32, 32, 3)}},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubes, [4]int8{2, 3, 1, 0}, 8, 0),
			segments:  paint.SegmentC0 | paint.SegmentC4 | paint.SegmentD0 | paint.SegmentD4,
			clearance: 56,
		},
		{ // 3
			sprites: [4][]trackSprite{
				{},
				{{16317, xyz(-16, -16, 0), box(-16, -16, 0, 32, 32, 3)}},
				{},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubes, [4]int8{0, 1, 3, 2}, 8, 0),
			segments:  paint.SegmentB8 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentD0,
			clearance: 56,
		},
	},
	inverted: []trackTile{
		{ // 0
			sprites: [4][]trackSprite{
				{},
				{},
				{},
				{{26685, xyz(-16, -16, 24), box(-16, -16, 22, 32, 32, 3)}},
			},
			segments:  paint.SegmentBC | paint.SegmentC4 | paint.SegmentCC | paint.SegmentD4,
			clearance: 72,
		},
		{ // 1
			sprites: [4][]trackSprite{
				{{26686, xyz(-16, -16, 24), box(-16, -16, 22, 32, 32, 3)}},
				{},
				{},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubesInverted, [4]int8{1, 0, 2, 3}, 8, 36),
			segments:  paint.SegmentB4 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentCC,
			clearance: 72,
		},
		{ // 2
			sprites: [4][]trackSprite{
				{},
				{},
				{{26687, xyz(-16, -16, 24), box(-16, -16, 22, 32, 32, 3)}},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubesInverted, [4]int8{2, 3, 1, 0}, 8, 36),
			segments:  paint.SegmentC0 | paint.SegmentC4 | paint.SegmentD0 | paint.SegmentD4,
			clearance: 72,
		},
		{ // 3
			sprites: [4][]trackSprite{
				{},
				{{26688, xyz(-16, -16, 24), box(-16, -16, 22, 32, 32, 3)}},
				{},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubesInverted, [4]int8{0, 1, 3, 2}, 8, 36),
			segments:  paint.SegmentB8 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentD0,
			clearance: 72,
		},
	},
}

var diagUp60Piece = trackPiece{
	normal: []trackTile{
		{ // 0
			sprites: [4][]trackSprite{
				{},
				{},
				{},
				{{16318, xyz(-16, -16, 0), box(-16, -16, 0, 32, 32, 3)}},
			},
			segments:  paint.SegmentBC | paint.SegmentC4 | paint.SegmentCC | paint.SegmentD4,
			clearance: 104,
		},
		{ // 1
			sprites: [4][]trackSprite{
				{{16319, xyz(-16, -16, 0), box(-16, -16, 0, 32, 32, 3)}},
				{},
				{},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubes, [4]int8{1, 0, 2, 3}, 32, 0),
			segments:  paint.SegmentB4 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentCC,
			clearance: 104,
		},
		{ // 2
			sprites: [4][]trackSprite{
				{},
				{},
				{{16320, xyz(-16, -16, 0), box(-16, -16, 0, 32, 32, 3)}},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubes, [4]int8{2, 3, 1, 0}, 32, 0),
			segments:  paint.SegmentC0 | paint.SegmentC4 | paint.SegmentD0 | paint.SegmentD4,
			clearance: 104,
		},
		{ // 3
			sprites: [4][]trackSprite{
				{},
				{{16321, xyz(-16, -16, 0), box(-16, -16, 0, 32, 32, 3)}},
				{},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubes, [4]int8{0, 1, 3, 2}, 32, 0),
			segments:  paint.SegmentB8 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentD0,
			clearance: 104,
		},
	},
	chain: []trackTile{
		{ // 0
			sprites: [4][]trackSprite{
				{},
				{},
				{},
				{{16322, xyz(-16, -16, 0), box(-16, -16, 0, 32, 32, 3)}},
			},
			segments:  paint.SegmentBC | paint.SegmentC4 | paint.SegmentCC | paint.SegmentD4,
			clearance: 104,
		},
		{ // 1
			sprites: [4][]trackSprite{
				{{16323, xyz(-16, -16, 0), box(-16, -16, 0, 32, 32, 3)}},
				{},
				{},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubes, [4]int8{1, 0, 2, 3}, 32, 0),
			segments:  paint.SegmentB4 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentCC,
			clearance: 104,
		},
		{ // 2
			sprites: [4][]trackSprite{
				{},
				{},
				{{16324, xyz(-16, -16, 0), box(-16, -16, 0, 32, 32, 3)}},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubes, [4]int8{2, 3, 1, 0}, 32, 0),
			segments:  paint.SegmentC0 | paint.SegmentC4 | paint.SegmentD0 | paint.SegmentD4,
			clearance: 104,
		},
		{ // 3
			sprites: [4][]trackSprite{
				{},
				{{16325, xyz(-16, -16, 0), box(-16, -16, 0, 32, 32, 3)}},
				{},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubes, [4]int8{0, 1, 3, 2}, 32, 0),
			segments:  paint.SegmentB8 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentD0,
			clearance: 104,
		},
	},
	inverted: []trackTile{
		{ // 0
			sprites: [4][]trackSprite{
				{},
				{},
				{},
				{{26689, xyz(-16, -16, 24), box(-16, -16, 22, 32, 32, 3)}},
			},
			segments:  paint.SegmentBC | paint.SegmentC4 | paint.SegmentCC | paint.SegmentD4,
			clearance: 120,
		},
		{ // 1
			sprites: [4][]trackSprite{
				{{26690, xyz(-16, -16, 24), box(-16, -16, 22, 32, 32, 3)}},
				{},
				{},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubesInverted, [4]int8{1, 0, 2, 3}, 32, 36),
			segments:  paint.SegmentB4 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentCC,
			clearance: 120,
		},
		{ // 2
			sprites: [4][]trackSprite{
				{},
				{},
				{{26691, xyz(-16, -16, 24), box(-16, -16, 22, 32, 32, 3)}},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubesInverted, [4]int8{2, 3, 1, 0}, 32, 36),
			segments:  paint.SegmentC0 | paint.SegmentC4 | paint.SegmentD0 | paint.SegmentD4,
			clearance: 120,
		},
		{ // 3
			sprites: [4][]trackSprite{
				{},
				{{26692, xyz(-16, -16, 24), box(-16, -16, 22, 32, 32, 3)}},
				{},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubesInverted, [4]int8{0, 1, 3, 2}, 32, 36),
			segments:  paint.SegmentB8 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentD0,
			clearance: 120,
		},
	},
}

var diagFlatToUp25Piece = trackPiece{
	normal: []trackTile{
		{ // 0
			sprites: [4][]trackSprite{
				{},
				{},
				{},
				{{16326, xyz(-16, -16, 0), box(-16, -16, 0, 32, 32, 3)}},
			},
			segments:  paint.SegmentBC | paint.SegmentC4 | paint.SegmentCC | paint.SegmentD4,
			clearance: 48,
		},
		{ // 1
			sprites: [4][]trackSprite{
				{{16327, xyz(-16, -16, 0), box(-16, -16, 0, 32, 32, 3)}},
				{},
				{},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubes, [4]int8{1, 0, 2, 3}, 3, 0),
			segments:  paint.SegmentB4 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentCC,
			clearance: 48,
		},
		{ // 2
			sprites: [4][]trackSprite{
				{},
				{},
				{{16328, xyz(-16, -16, 0), box(-16, -16, 0, 32, 32, 3)}},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubes, [4]int8{2, 3, 1, 0}, 3, 0),
			segments:  paint.SegmentC0 | paint.SegmentC4 | paint.SegmentD0 | paint.SegmentD4,
			clearance: 48,
		},
		{ // 3
			sprites: [4][]trackSprite{
				{},
				{{16329, xyz(-16, -16, 0), box(-16, -16, 0, 32, 32, 3)}},
				{},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubes, [4]int8{0, 1, 3, 2}, 3, 0),
			segments:  paint.SegmentB8 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentD0,
			clearance: 48,
		},
	},
	chain: []trackTile{
		{ // 0
			sprites: [4][]trackSprite{
				{},
				{},
				{},
				{{16330, xyz(-16, -16, 0), box(-16, -16, 0, 32, 32, 3)}},
			},
			segments:  paint.SegmentBC | paint.SegmentC4 | paint.SegmentCC | paint.SegmentD4,
			clearance: 48,
		},
		{ // 1
			sprites: [4][]trackSprite{
				{{16331, xyz(-16, -16, 0), box(-16, -16, 0, 32, 32, 3)}},
				{},
				{},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubes, [4]int8{1, 0, 2, 3}, 3, 0),
			segments:  paint.SegmentB4 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentCC,
			clearance: 48,
		},
		{ // 2
			sprites: [4][]trackSprite{
				{},
				{},
				{{16332, xyz(-16, -16, 0), box(-16, -16, 0, 32, 32, 3)}},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubes, [4]int8{2, 3, 1, 0}, 3, 0),
			segments:  paint.SegmentC0 | paint.SegmentC4 | paint.SegmentD0 | paint.SegmentD4,
			clearance: 48,
		},
		{ // 3
			sprites: [4][]trackSprite{
				{},
				{{16333, xyz(-16, -16, 0), box(-16, -16, 0, 32, 32, 3)}},
				{},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubes, [4]int8{0, 1, 3, 2}, 3, 0),
			segments:  paint.SegmentB8 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentD0,
			clearance: 48,
		},
	},
	inverted: []trackTile{
		{ // 0
			sprites: [4][]trackSprite{
				{},
				{},
				{},
				{{26693, xyz(-16, -16, 24), box(-16, -16, 22, 32, 32, 3)}},
			},
			segments:  paint.SegmentBC | paint.SegmentC4 | paint.SegmentCC | paint.SegmentD4,
			clearance: 64,
		},
		{ // 1
			sprites: [4][]trackSprite{
				{{26694, xyz(-16, -16, 24), box(-16, -16, 22, 32, 32, 3)}},
				{},
				{},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubesInverted, [4]int8{1, 0, 2, 3}, 3, 36),
			segments:  paint.SegmentB4 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentCC,
			clearance: 64,
		},
		{ // 2
			sprites: [4][]trackSprite{
				{},
				{},
				{{26695, xyz(-16, -16, 24), box(-16, -16, 22, 32, 32, 3)}},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubesInverted, [4]int8{2, 3, 1, 0}, 3, 36),
			segments:  paint.SegmentC0 | paint.SegmentC4 | paint.SegmentD0 | paint.SegmentD4,
			clearance: 64,
		},
		{ // 3
			sprites: [4][]trackSprite{
				{},
				{{26696, xyz(-16, -16, 24), box(-16, -16, 22, 32, 32, 3)}},
				{},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubesInverted, [4]int8{0, 1, 3, 2}, 3, 36),
			segments:  paint.SegmentB8 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentD0,
			clearance: 64,
		},
	},
}

var diagUp25ToUp60Piece = trackPiece{
	normal: []trackTile{
		{ // 0
			sprites: [4][]trackSprite{
				{},
				{},
				{},
				{{16334, xyz(-16, -16, 0), box(-16, -16, 0, 32, 32, 3)}},
			},
			segments:  paint.SegmentBC | paint.SegmentC4 | paint.SegmentCC | paint.SegmentD4,
			clearance: 72,
		},
		{ // 1
			sprites: [4][]trackSprite{
				{{16335, xyz(-16, -16, 0), box(-16, -16, 0, 32, 32, 3)}},
				{},
				{},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubes, [4]int8{1, 0, 2, 3}, 12, 0),
			segments:  paint.SegmentB4 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentCC,
			clearance: 72,
		},
		{ // 2
			sprites: [4][]trackSprite{
				{},
				{},
				{{16336, xyz(-16, -16, 0), box(-16, -16, 0, 32, 32, 3)}},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubes, [4]int8{2, 3, 1, 0}, 12, 0),
			segments:  paint.SegmentC0 | paint.SegmentC4 | paint.SegmentD0 | paint.SegmentD4,
			clearance: 72,
		},
		{ // 3
			sprites: [4][]trackSprite{
				{},
				{{16337, xyz(-16, -16, 0), box(-16, -16, 0, 32, 32, 3)}},
				{},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubes, [4]int8{0, 1, 3, 2}, 12, 0),
			segments:  paint.SegmentB8 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentD0,
			clearance: 72,
		},
	},
	chain: []trackTile{
		{ // 0
			sprites: [4][]trackSprite{
				{},
				{},
				{},
				{{16338, xyz(-16, -16, 0), box(-16, -16, 0, 32, 32, 3)}},
			},
			segments:  paint.SegmentBC | paint.SegmentC4 | paint.SegmentCC | paint.SegmentD4,
			clearance: 72,
		},
		{ // 1
			sprites: [4][]trackSprite{
				{{16339, xyz(-16, -16, 0), box(-16, -16, 0, 32, 32, 3)}},
				{},
				{},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubes, [4]int8{1, 0, 2, 3}, 12, 0),
			segments:  paint.SegmentB4 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentCC,
			clearance: 72,
		},
		{ // 2
			sprites: [4][]trackSprite{
				{},
				{},
				{{16340, xyz(-16, -16, 0), box(-16, -16, 0, 32, 32, 3)}},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubes, [4]int8{2, 3, 1, 0}, 12, 0),
			segments:  paint.SegmentC0 | paint.SegmentC4 | paint.SegmentD0 | paint.SegmentD4,
			clearance: 72,
		},
		{ // 3
			sprites: [4][]trackSprite{
				{},
				{{16341, xyz(-16, -16, 0), box(-16, -16, 0, 32, 32, 3)}},
				{},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubes, [4]int8{0, 1, 3, 2}, 12, 0),
			segments:  paint.SegmentB8 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentD0,
			clearance: 72,
		},
	},
	inverted: []trackTile{
		{ // 0
			sprites: [4][]trackSprite{
				{},
				{},
				{},
				{{26697, xyz(-16, -16, 24), box(-16, -16, 22, 32, 32, 3)}},
			},
			segments:  paint.SegmentBC | paint.SegmentC4 | paint.SegmentCC | paint.SegmentD4,
			clearance: 88,
		},
		{ // 1
			sprites: [4][]trackSprite{
				{{26698, xyz(-16, -16, 24), box(-16, -16, 22, 32, 32, 3)}},
				{},
				{},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubesInverted, [4]int8{1, 0, 2, 3}, 12, 36),
			segments:  paint.SegmentB4 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentCC,
			clearance: 88,
		},
		{ // 2
			sprites: [4][]trackSprite{
				{},
				{},
				{{26699, xyz(-16, -16, 24), box(-16, -16, 22, 32, 32, 3)}},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubesInverted, [4]int8{2, 3, 1, 0}, 12, 36),
			segments:  paint.SegmentC0 | paint.SegmentC4 | paint.SegmentD0 | paint.SegmentD4,
			clearance: 88,
		},
		{ // 3
			sprites: [4][]trackSprite{
				{},
				{{26700, xyz(-16, -16, 24), box(-16, -16, 22, 32, 32, 3)}},
				{},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubesInverted, [4]int8{0, 1, 3, 2}, 12, 36),
			segments:  paint.SegmentB8 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentD0,
			clearance: 88,
		},
	},
}

var diagUp60ToUp25Piece = trackPiece{
	normal: []trackTile{
		{ // 0
			sprites: [4][]trackSprite{
				{},
				{},
				{},
				{{16342, xyz(-16, -16, 0), box(-16, -16, 0, 32, 32, 3)}},
			},
			segments:  paint.SegmentBC | paint.SegmentC4 | paint.SegmentCC | paint.SegmentD4,
			clearance: 72,
		},
		{ // 1
			sprites: [4][]trackSprite{
				{{16343, xyz(-16, -16, 0), box(-16, -16, 0, 32, 32, 3)}},
				{},
				{},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubes, [4]int8{1, 0, 2, 3}, 20, 0),
			segments:  paint.SegmentB4 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentCC,
			clearance: 72,
		},
		{ // 2
			sprites: [4][]trackSprite{
				{},
				{},
				{{16344, xyz(-16, -16, 0), box(-16, -16, 0, 32, 32, 3)}},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubes, [4]int8{2, 3, 1, 0}, 20, 0),
			segments:  paint.SegmentC0 | paint.SegmentC4 | paint.SegmentD0 | paint.SegmentD4,
			clearance: 72,
		},
		{ // 3
			sprites: [4][]trackSprite{
				{},
				{{16345, xyz(-16, -16, 0), box(-16, -16, 0, 32, 32, 3)}},
				{},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubes, [4]int8{0, 1, 3, 2}, 20, 0),
			segments:  paint.SegmentB8 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentD0,
			clearance: 72,
		},
	},
	chain: []trackTile{
		{ // 0
			sprites: [4][]trackSprite{
				{},
				{},
				{},
				{{16346, xyz(-16, -16, 0), box(-16, -16, 0, 32, 32, 3)}},
			},
			segments:  paint.SegmentBC | paint.SegmentC4 | paint.SegmentCC | paint.SegmentD4,
			clearance: 72,
		},
		{ // 1
			sprites: [4][]trackSprite{
				{{16347, xyz(-16, -16, 0), box(-16, -16, 0, 32, 32, 3)}},
				{},
				{},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubes, [4]int8{1, 0, 2, 3}, 20, 0),
			segments:  paint.SegmentB4 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentCC,
			clearance: 72,
		},
		{ // 2
			sprites: [4][]trackSprite{
				{},
				{},
				{{16348, xyz(-16, -16, 0), box(-16, -16, 0, 32, 32, 3)}},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubes, [4]int8{2, 3, 1, 0}, 20, 0),
			segments:  paint.SegmentC0 | paint.SegmentC4 | paint.SegmentD0 | paint.SegmentD4,
			clearance: 72,
		},
		{ // 3
			sprites: [4][]trackSprite{
				{},
				{{16349, xyz(-16, -16, 0), box(-16, -16, 0, 32, 32, 3)}},
				{},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubes, [4]int8{0, 1, 3, 2}, 20, 0),
			segments:  paint.SegmentB8 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentD0,
			clearance: 72,
		},
	},
	inverted: []trackTile{
		{ // 0
			sprites: [4][]trackSprite{
				{},
				{},
				{},
				{{26701, xyz(-16, -16, 24), box(-16, -16, 22, 32, 32, 3)}},
			},
			segments:  paint.SegmentBC | paint.SegmentC4 | paint.SegmentCC | paint.SegmentD4,
			clearance: 88,
		},
		{ // 1
			sprites: [4][]trackSprite{
				{{26702, xyz(-16, -16, 24), box(-16, -16, 22, 32, 32, 3)}},
				{},
				{},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubesInverted, [4]int8{1, 0, 2, 3}, 20, 36),
			segments:  paint.SegmentB4 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentCC,
			clearance: 88,
		},
		{ // 2
			sprites: [4][]trackSprite{
				{},
				{},
				{{26703, xyz(-16, -16, 24), box(-16, -16, 22, 32, 32, 3)}},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubesInverted, [4]int8{2, 3, 1, 0}, 20, 36),
			segments:  paint.SegmentC0 | paint.SegmentC4 | paint.SegmentD0 | paint.SegmentD4,
			clearance: 88,
		},
		{ // 3
			sprites: [4][]trackSprite{
				{},
				{{26704, xyz(-16, -16, 24), box(-16, -16, 22, 32, 32, 3)}},
				{},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubesInverted, [4]int8{0, 1, 3, 2}, 20, 36),
			segments:  paint.SegmentB8 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentD0,
			clearance: 88,
		},
	},
}

var diagUp25ToFlatPiece = trackPiece{
	normal: []trackTile{
		{ // 0
			sprites: [4][]trackSprite{
				{},
				{},
				{},
				{{16350, xyz(-16, -16, 0), box(-16, -16, 0, 32, 32, 3)}},
			},
			segments:  paint.SegmentBC | paint.SegmentC4 | paint.SegmentCC | paint.SegmentD4,
			clearance: 40,
		},
		{ // 1
			sprites: [4][]trackSprite{
				{{16351, xyz(-16, -16, 0), box(-16, -16, 0, 32, 32, 3)}},
				{},
				{},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubes, [4]int8{1, 0, 2, 3}, 6, 0),
			segments:  paint.SegmentB4 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentCC,
			clearance: 40,
		},
		{ // 2
			sprites: [4][]trackSprite{
				{},
				{},
				{{16352, xyz(-16, -16, 0), box(-16, -16, 0, 32, 32, 3)}},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubes, [4]int8{2, 3, 1, 0}, 6, 0),
			segments:  paint.SegmentC0 | paint.SegmentC4 | paint.SegmentD0 | paint.SegmentD4,
			clearance: 40,
		},
		{ // 3
			sprites: [4][]trackSprite{
				{},
				{{16353, xyz(-16, -16, 0), box(-16, -16, 0, 32, 32, 3)}},
				{},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubes, [4]int8{0, 1, 3, 2}, 6, 0),
			segments:  paint.SegmentB8 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentD0,
			clearance: 40,
		},
	},
	chain: []trackTile{
		{ // 0
			sprites: [4][]trackSprite{
				{},
				{},
				{},
				{{16354, xyz(-16, -16, 0), box(-16, -16, 0, 32, 32, 3)}},
			},
			segments:  paint.SegmentBC | paint.SegmentC4 | paint.SegmentCC | paint.SegmentD4,
			clearance: 40,
		},
		{ // 1
			sprites: [4][]trackSprite{
				{{16355, xyz(-16, -16, 0), box(-16, -16, 0, 32, 32, 3)}},
				{},
				{},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubes, [4]int8{1, 0, 2, 3}, 6, 0),
			segments:  paint.SegmentB4 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentCC,
			clearance: 40,
		},
		{ // 2
			sprites: [4][]trackSprite{
				{},
				{},
				{{16356, xyz(-16, -16, 0), box(-16, -16, 0, 32, 32, 3)}},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubes, [4]int8{2, 3, 1, 0}, 6, 0),
			segments:  paint.SegmentC0 | paint.SegmentC4 | paint.SegmentD0 | paint.SegmentD4,
			clearance: 40,
		},
		{ // 3
			sprites: [4][]trackSprite{
				{},
				{{16357, xyz(-16, -16, 0), box(-16, -16, 0, 32, 32, 3)}},
				{},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubes, [4]int8{0, 1, 3, 2}, 6, 0),
			segments:  paint.SegmentB8 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentD0,
			clearance: 40,
		},
	},
	inverted: []trackTile{
		{ // 0
			sprites: [4][]trackSprite{
				{},
				{},
				{},
				{{26705, xyz(-16, -16, 24), box(-16, -16, 22, 32, 32, 3)}},
			},
			segments:  paint.SegmentBC | paint.SegmentC4 | paint.SegmentCC | paint.SegmentD4,
			clearance: 56,
		},
		{ // 1
			sprites: [4][]trackSprite{
				{{26706, xyz(-16, -16, 24), box(-16, -16, 22, 32, 32, 3)}},
				{},
				{},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubesInverted, [4]int8{1, 0, 2, 3}, 6, 36),
			segments:  paint.SegmentB4 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentCC,
			clearance: 56,
		},
		{ // 2
			sprites: [4][]trackSprite{
				{},
				{},
				{{26707, xyz(-16, -16, 24), box(-16, -16, 22, 32, 32, 3)}},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubesInverted, [4]int8{2, 3, 1, 0}, 6, 36),
			segments:  paint.SegmentC0 | paint.SegmentC4 | paint.SegmentD0 | paint.SegmentD4,
			clearance: 56,
		},
		{ // 3
			sprites: [4][]trackSprite{
				{},
				{{26708, xyz(-16, -16, 24), box(-16, -16, 22, 32, 32, 3)}},
				{},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubesInverted, [4]int8{0, 1, 3, 2}, 6, 36),
			segments:  paint.SegmentB8 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentD0,
			clearance: 56,
		},
	},
}

var diagDown25Piece = trackPiece{
	normal: []trackTile{
		{ // 0
			sprites: [4][]trackSprite{
				{},
				{},
				{},
				{{16358, xyz(-16, -16, 0), box(-16, -16, 0, 32, 32, 3)}},
			},
			segments:  paint.SegmentBC | paint.SegmentC4 | paint.SegmentCC | paint.SegmentD4,
			clearance: 56,
		},
		{ // 1
			sprites: [4][]trackSprite{
				{{16359, xyz(-16, -16, 0), box(-16, -16, 0, 32, 32, 3)}},
				{},
				{},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubes, [4]int8{1, 0, 2, 3}, 8, 0),
			segments:  paint.SegmentB4 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentCC,
			clearance: 56,
		},
		{ // 2
			sprites: [4][]trackSprite{
				{},
				{},
				{{16360, xyz(-16, -16, 0), box(-16, -16, 0, 32, 32, 3)}},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubes, [4]int8{2, 3, 1, 0}, 8, 0),
			segments:  paint.SegmentC0 | paint.SegmentC4 | paint.SegmentD0 | paint.SegmentD4,
			clearance: 56,
		},
		{ // 3
			sprites: [4][]trackSprite{
				{},
				{{16361, xyz(-16, -16, 0), box(-16, -16, 0, 32, 32, 3)}},
				{},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubes, [4]int8{0, 1, 3, 2}, 8, 0),
			segments:  paint.SegmentB8 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentD0,
			clearance: 56,
		},
	},
	chain: []trackTile{
		{ // 0
			sprites: [4][]trackSprite{
				{},
				{},
				{},
				{{16362, xyz(-16, -16, 0), box(-16, -16, 0, 32, 32, 3)}},
			},
			segments:  paint.SegmentBC | paint.SegmentC4 | paint.SegmentCC | paint.SegmentD4,
			clearance: 56,
		},
		{ // 1
			sprites: [4][]trackSprite{
				{{16363, xyz(-16, -16, 0), box(-16, -16, 0, 32, 32, 3)}},
				{},
				{},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubes, [4]int8{1, 0, 2, 3}, 8, 0),
			segments:  paint.SegmentB4 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentCC,
			clearance: 56,
		},
		{ // 2
			sprites: [4][]trackSprite{
				{},
				{},
				{{16364, xyz(-16, -16, 0), box(-16, -16, 0, 32, 32, 3)}},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubes, [4]int8{2, 3, 1, 0}, 8, 0),
			segments:  paint.SegmentC0 | paint.SegmentC4 | paint.SegmentD0 | paint.SegmentD4,
			clearance: 56,
		},
		{ // 3
			sprites: [4][]trackSprite{
				{},
				{{16365, xyz(-16, -16, 0), box(-16, -16, 0, 32, 32, 3)}},
				{},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubes, [4]int8{0, 1, 3, 2}, 8, 0),
			segments:  paint.SegmentB8 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentD0,
			clearance: 56,
		},
	},
	inverted: []trackTile{
		{ // 0
			sprites: [4][]trackSprite{
				{},
				{},
				{},
				{{26709, xyz(-16, -16, 24), box(-16, -16, 22, 32, 32, 3)}},
			},
			segments:  paint.SegmentBC | paint.SegmentC4 | paint.SegmentCC | paint.SegmentD4,
			clearance: 72,
		},
		{ // 1
			sprites: [4][]trackSprite{
				{{26710, xyz(-16, -16, 24), box(-16, -16, 22, 32, 32, 3)}},
				{},
				{},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubesInverted, [4]int8{1, 0, 2, 3}, 8, 36),
			segments:  paint.SegmentB4 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentCC,
			clearance: 72,
		},
		{ // 2
			sprites: [4][]trackSprite{
				{},
				{},
				{{26711, xyz(-16, -16, 24), box(-16, -16, 22, 32, 32, 3)}},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubesInverted, [4]int8{2, 3, 1, 0}, 8, 36),
			segments:  paint.SegmentC0 | paint.SegmentC4 | paint.SegmentD0 | paint.SegmentD4,
			clearance: 72,
		},
		{ // 3
			sprites: [4][]trackSprite{
				{},
				{{26712, xyz(-16, -16, 24), box(-16, -16, 22, 32, 32, 3)}},
				{},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubesInverted, [4]int8{0, 1, 3, 2}, 8, 36),
			segments:  paint.SegmentB8 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentD0,
			clearance: 72,
		},
	},
}

var diagDown60Piece = trackPiece{
	normal: []trackTile{
		{ // 0
			sprites: [4][]trackSprite{
				{},
				{},
				{},
				{{16366, xyz(-16, -16, 0), box(-16, -16, 0, 32, 32, 3)}},
			},
			segments:  paint.SegmentBC | paint.SegmentC4 | paint.SegmentCC | paint.SegmentD4,
			clearance: 104,
		},
		{ // 1
			sprites: [4][]trackSprite{
				{{16367, xyz(-16, -16, 0), box(-16, -16, 0, 32, 32, 3)}},
				{},
				{},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubes, [4]int8{1, 0, 2, 3}, 28, 0),
			segments:  paint.SegmentB4 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentCC,
			clearance: 104,
		},
		{ // 2
			sprites: [4][]trackSprite{
				{},
				{},
				{{16368, xyz(-16, -16, 0), box(-16, -16, 0, 32, 32, 3)}},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubes, [4]int8{2, 3, 1, 0}, 28, 0),
			segments:  paint.SegmentC0 | paint.SegmentC4 | paint.SegmentD0 | paint.SegmentD4,
			clearance: 104,
		},
		{ // 3
			sprites: [4][]trackSprite{
				{},
				{{16369, xyz(-16, -16, 0), box(-16, -16, 0, 32, 32, 3)}},
				{},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubes, [4]int8{0, 1, 3, 2}, 28, 0),
			segments:  paint.SegmentB8 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentD0,
			clearance: 104,
		},
	},
	chain: []trackTile{
		{ // 0
			sprites: [4][]trackSprite{
				{},
				{},
				{},
				{{16370, xyz(-16, -16, 0), box(-16, -16, 0, 32, 32, 3)}},
			},
			segments:  paint.SegmentBC | paint.SegmentC4 | paint.SegmentCC | paint.SegmentD4,
			clearance: 104,
		},
		{ // 1
			sprites: [4][]trackSprite{
				{{16371, xyz(-16, -16, 0), box(-16, -16, 0, 32, 32, 3)}},
				{},
				{},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubes, [4]int8{1, 0, 2, 3}, 28, 0),
			segments:  paint.SegmentB4 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentCC,
			clearance: 104,
		},
		{ // 2
			sprites: [4][]trackSprite{
				{},
				{},
				{{16372, xyz(-16, -16, 0), box(-16, -16, 0, 32, 32, 3)}},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubes, [4]int8{2, 3, 1, 0}, 28, 0),
			segments:  paint.SegmentC0 | paint.SegmentC4 | paint.SegmentD0 | paint.SegmentD4,
			clearance: 104,
		},
		{ // 3
			sprites: [4][]trackSprite{
				{},
				{{16373, xyz(-16, -16, 0), box(-16, -16, 0, 32, 32, 3)}},
				{},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubes, [4]int8{0, 1, 3, 2}, 28, 0),
			segments:  paint.SegmentB8 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentD0,
			clearance: 104,
		},
	},
	inverted: []trackTile{
		{ // 0
			sprites: [4][]trackSprite{
				{},
				{},
				{},
				{{26713, xyz(-16, -16, 24), box(-16, -16, 22, 32, 32, 3)}},
			},
			segments:  paint.SegmentBC | paint.SegmentC4 | paint.SegmentCC | paint.SegmentD4,
			clearance: 120,
		},
		{ // 1
			sprites: [4][]trackSprite{
				{{26714, xyz(-16, -16, 24), box(-16, -16, 22, 32, 32, 3)}},
				{},
				{},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubesInverted, [4]int8{1, 0, 2, 3}, 28, 36),
			segments:  paint.SegmentB4 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentCC,
			clearance: 120,
		},
		{ // 2
			sprites: [4][]trackSprite{
				{},
				{},
				{{26715, xyz(-16, -16, 24), box(-16, -16, 22, 32, 32, 3)}},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubesInverted, [4]int8{2, 3, 1, 0}, 28, 36),
			segments:  paint.SegmentC0 | paint.SegmentC4 | paint.SegmentD0 | paint.SegmentD4,
			clearance: 120,
		},
		{ // 3
			sprites: [4][]trackSprite{
				{},
				{{26716, xyz(-16, -16, 24), box(-16, -16, 22, 32, 32, 3)}},
				{},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubesInverted, [4]int8{0, 1, 3, 2}, 28, 36),
			segments:  paint.SegmentB8 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentD0,
			clearance: 120,
		},
	},
}

var diagFlatToDown25Piece = trackPiece{
	normal: []trackTile{
		{ // 0
			sprites: [4][]trackSprite{
				{},
				{},
				{},
				{{16374, xyz(-16, -16, 0), box(-16, -16, 0, 32, 32, 3)}},
			},
			segments:  paint.SegmentBC | paint.SegmentC4 | paint.SegmentCC | paint.SegmentD4,
			clearance: 40,
		},
		{ // 1
			sprites: [4][]trackSprite{
				{{16375, xyz(-16, -16, 0), box(-16, -16, 0, 32, 32, 3)}},
				{},
				{},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubes, [4]int8{1, 0, 2, 3}, 6, 0),
			segments:  paint.SegmentB4 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentCC,
			clearance: 40,
		},
		{ // 2
			sprites: [4][]trackSprite{
				{},
				{},
				{{16376, xyz(-16, -16, 0), box(-16, -16, 0, 32, 32, 3)}},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubes, [4]int8{2, 3, 1, 0}, 6, 0),
			segments:  paint.SegmentC0 | paint.SegmentC4 | paint.SegmentD0 | paint.SegmentD4,
			clearance: 40,
		},
		{ // 3
			sprites: [4][]trackSprite{
				{},
				{{16377, xyz(-16, -16, 0), box(-16, -16, 0, 32, 32, 3)}},
				{},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubes, [4]int8{0, 1, 3, 2}, 6, 0),
			segments:  paint.SegmentB8 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentD0,
			clearance: 40,
		},
	},
	chain: []trackTile{
		{ // 0
			sprites: [4][]trackSprite{
				{},
				{},
				{},
				{{16378, xyz(-16, -16, 0), box(-16, -16, 0, 32, 32, 3)}},
			},
			segments:  paint.SegmentBC | paint.SegmentC4 | paint.SegmentCC | paint.SegmentD4,
			clearance: 40,
		},
		{ // 1
			sprites: [4][]trackSprite{
				{{16379, xyz(-16, -16, 0), box(-16, -16, 0, 32, 32, 3)}},
				{},
				{},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubes, [4]int8{1, 0, 2, 3}, 6, 0),
			segments:  paint.SegmentB4 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentCC,
			clearance: 40,
		},
		{ // 2
			sprites: [4][]trackSprite{
				{},
				{},
				{{16380, xyz(-16, -16, 0), box(-16, -16, 0, 32, 32, 3)}},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubes, [4]int8{2, 3, 1, 0}, 6, 0),
			segments:  paint.SegmentC0 | paint.SegmentC4 | paint.SegmentD0 | paint.SegmentD4,
			clearance: 40,
		},
		{ // 3
			sprites: [4][]trackSprite{
				{},
				{{16381, xyz(-16, -16, 0), box(-16, -16, 0, 32, 32, 3)}},
				{},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubes, [4]int8{0, 1, 3, 2}, 6, 0),
			segments:  paint.SegmentB8 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentD0,
			clearance: 40,
		},
	},
	inverted: []trackTile{
		{ // 0
			sprites: [4][]trackSprite{
				{},
				{},
				{},
				{{26717, xyz(-16, -16, 24), box(-16, -16, 22, 32, 32, 3)}},
			},
			segments:  paint.SegmentBC | paint.SegmentC4 | paint.SegmentCC | paint.SegmentD4,
			clearance: 56,
		},
		{ // 1
			sprites: [4][]trackSprite{
				{{26718, xyz(-16, -16, 24), box(-16, -16, 22, 32, 32, 3)}},
				{},
				{},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubesInverted, [4]int8{1, 0, 2, 3}, 6, 36),
			segments:  paint.SegmentB4 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentCC,
			clearance: 56,
		},
		{ // 2
			sprites: [4][]trackSprite{
				{},
				{},
				{{26719, xyz(-16, -16, 24), box(-16, -16, 22, 32, 32, 3)}},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubesInverted, [4]int8{2, 3, 1, 0}, 6, 36),
			segments:  paint.SegmentC0 | paint.SegmentC4 | paint.SegmentD0 | paint.SegmentD4,
			clearance: 56,
		},
		{ // 3
			sprites: [4][]trackSprite{
				{},
				{{26720, xyz(-16, -16, 24), box(-16, -16, 22, 32, 32, 3)}},
				{},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubesInverted, [4]int8{0, 1, 3, 2}, 6, 36),
			segments:  paint.SegmentB8 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentD0,
			clearance: 56,
		},
	},
}

var diagDown25ToDown60Piece = trackPiece{
	normal: []trackTile{
		{ // 0
			sprites: [4][]trackSprite{
				{},
				{},
				{},
				{{16382, xyz(-16, -16, 0), box(-16, -16, 0, 32, 32, 3)}},
			},
			segments:  paint.SegmentBC | paint.SegmentC4 | paint.SegmentCC | paint.SegmentD4,
			clearance: 72,
		},
		{ // 1
			sprites: [4][]trackSprite{
				{{16383, xyz(-16, -16, 0), box(-16, -16, 0, 32, 32, 3)}},
				{},
				{},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubes, [4]int8{1, 0, 2, 3}, 16, 0),
			segments:  paint.SegmentB4 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentCC,
			clearance: 72,
		},
		{ // 2
			sprites: [4][]trackSprite{
				{},
				{},
				{{16384, xyz(-16, -16, 0), box(-16, -16, 0, 32, 32, 3)}},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubes, [4]int8{2, 3, 1, 0}, 16, 0),
			segments:  paint.SegmentC0 | paint.SegmentC4 | paint.SegmentD0 | paint.SegmentD4,
			clearance: 72,
		},
		{ // 3
			sprites: [4][]trackSprite{
				{},
				{{16385, xyz(-16, -16, 0), box(-16, -16, 0, 32, 32, 3)}},
				{},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubes, [4]int8{0, 1, 3, 2}, 16, 0),
			segments:  paint.SegmentB8 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentD0,
			clearance: 72,
		},
	},
	chain: []trackTile{
		{ // 0
			sprites: [4][]trackSprite{
				{},
				{},
				{},
				{{16386, xyz(-16, -16, 0), box(-16, -16, 0, 32, 32, 3)}},
			},
			segments:  paint.SegmentBC | paint.SegmentC4 | paint.SegmentCC | paint.SegmentD4,
			clearance: 72,
		},
		{ // 1
			sprites: [4][]trackSprite{
				{{16387, xyz(-16, -16, 0), box(-16, -16, 0, 32, 32, 3)}},
				{},
				{},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubes, [4]int8{1, 0, 2, 3}, 16, 0),
			segments:  paint.SegmentB4 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentCC,
			clearance: 72,
		},
		{ // 2
			sprites: [4][]trackSprite{
				{},
				{},
				{{16388, xyz(-16, -16, 0), box(-16, -16, 0, 32, 32, 3)}},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubes, [4]int8{2, 3, 1, 0}, 16, 0),
			segments:  paint.SegmentC0 | paint.SegmentC4 | paint.SegmentD0 | paint.SegmentD4,
			clearance: 72,
		},
		{ // 3
			sprites: [4][]trackSprite{
				{},
				{{16389, xyz(-16, -16, 0), box(-16, -16, 0, 32, 32, 3)}},
				{},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubes, [4]int8{0, 1, 3, 2}, 16, 0),
			segments:  paint.SegmentB8 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentD0,
			clearance: 72,
		},
	},
	inverted: []trackTile{
		{ // 0
			sprites: [4][]trackSprite{
				{},
				{},
				{},
				{{26721, xyz(-16, -16, 24), box(-16, -16, 22, 32, 32, 3)}},
			},
			segments:  paint.SegmentBC | paint.SegmentC4 | paint.SegmentCC | paint.SegmentD4,
			clearance: 88,
		},
		{ // 1
			sprites: [4][]trackSprite{
				{{26722, xyz(-16, -16, 24), box(-16, -16, 22, 32, 32, 3)}},
				{},
				{},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubesInverted, [4]int8{1, 0, 2, 3}, 16, 36),
			segments:  paint.SegmentB4 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentCC,
			clearance: 88,
		},
		{ // 2
			sprites: [4][]trackSprite{
				{},
				{},
				{{26723, xyz(-16, -16, 24), box(-16, -16, 22, 32, 32, 3)}},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubesInverted, [4]int8{2, 3, 1, 0}, 16, 36),
			segments:  paint.SegmentC0 | paint.SegmentC4 | paint.SegmentD0 | paint.SegmentD4,
			clearance: 88,
		},
		{ // 3
			sprites: [4][]trackSprite{
				{},
				{{26724, xyz(-16, -16, 24), box(-16, -16, 22, 32, 32, 3)}},
				{},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubesInverted, [4]int8{0, 1, 3, 2}, 16, 36),
			segments:  paint.SegmentB8 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentD0,
			clearance: 88,
		},
	},
}

var diagDown60ToDown25Piece = trackPiece{
	normal: []trackTile{
		{ // 0
			sprites: [4][]trackSprite{
				{},
				{},
				{},
				{{16390, xyz(-16, -16, 0), box(-16, -16, 0, 32, 32, 3)}},
			},
			segments:  paint.SegmentBC | paint.SegmentC4 | paint.SegmentCC | paint.SegmentD4,
			clearance: 72,
		},
		{ // 1
			sprites: [4][]trackSprite{
				{{16391, xyz(-16, -16, 0), box(-16, -16, 0, 32, 32, 3)}},
				{},
				{},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubes, [4]int8{1, 0, 2, 3}, 21, 0),
			segments:  paint.SegmentB4 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentCC,
			clearance: 72,
		},
		{ // 2
			sprites: [4][]trackSprite{
				{},
				{},
				{{16392, xyz(-16, -16, 0), box(-16, -16, 0, 32, 32, 3)}},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubes, [4]int8{2, 3, 1, 0}, 21, 0),
			segments:  paint.SegmentC0 | paint.SegmentC4 | paint.SegmentD0 | paint.SegmentD4,
			clearance: 72,
		},
		{ // 3
			sprites: [4][]trackSprite{
				{},
				{{16393, xyz(-16, -16, 0), box(-16, -16, 0, 32, 32, 3)}},
				{},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubes, [4]int8{0, 1, 3, 2}, 21, 0),
			segments:  paint.SegmentB8 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentD0,
			clearance: 72,
		},
	},
	chain: []trackTile{
		{ // 0
			sprites: [4][]trackSprite{
				{},
				{},
				{},
				{{16394, xyz(-16, -16, 0), box(-16, -16, 0, 32, 32, 3)}},
			},
			segments:  paint.SegmentBC | paint.SegmentC4 | paint.SegmentCC | paint.SegmentD4,
			clearance: 72,
		},
		{ // 1
			sprites: [4][]trackSprite{
				{{16395, xyz(-16, -16, 0), box(-16, -16, 0, 32, 32, 3)}},
				{},
				{},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubes, [4]int8{1, 0, 2, 3}, 21, 0),
			segments:  paint.SegmentB4 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentCC,
			clearance: 72,
		},
		{ // 2
			sprites: [4][]trackSprite{
				{},
				{},
				{{16396, xyz(-16, -16, 0), box(-16, -16, 0, 32, 32, 3)}},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubes, [4]int8{2, 3, 1, 0}, 21, 0),
			segments:  paint.SegmentC0 | paint.SegmentC4 | paint.SegmentD0 | paint.SegmentD4,
			clearance: 72,
		},
		{ // 3
			sprites: [4][]trackSprite{
				{},
				{{16397, xyz(-16, -16, 0), box(-16, -16, 0, 32, 32, 3)}},
				{},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubes, [4]int8{0, 1, 3, 2}, 21, 0),
			segments:  paint.SegmentB8 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentD0,
			clearance: 72,
		},
	},
	inverted: []trackTile{
		{ // 0
			sprites: [4][]trackSprite{
				{},
				{},
				{},
				{{26725, xyz(-16, -16, 24), box(-16, -16, 22, 32, 32, 3)}},
			},
			segments:  paint.SegmentBC | paint.SegmentC4 | paint.SegmentCC | paint.SegmentD4,
			clearance: 88,
		},
		{ // 1
			sprites: [4][]trackSprite{
				{{26726, xyz(-16, -16, 24), box(-16, -16, 22, 32, 32, 3)}},
				{},
				{},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubesInverted, [4]int8{1, 0, 2, 3}, 21, 36),
			segments:  paint.SegmentB4 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentCC,
			clearance: 88,
		},
		{ // 2
			sprites: [4][]trackSprite{
				{},
				{},
				{{26727, xyz(-16, -16, 24), box(-16, -16, 22, 32, 32, 3)}},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubesInverted, [4]int8{2, 3, 1, 0}, 21, 36),
			segments:  paint.SegmentC0 | paint.SegmentC4 | paint.SegmentD0 | paint.SegmentD4,
			clearance: 88,
		},
		{ // 3
			sprites: [4][]trackSprite{
				{},
				{{26728, xyz(-16, -16, 24), box(-16, -16, 22, 32, 32, 3)}},
				{},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubesInverted, [4]int8{0, 1, 3, 2}, 21, 36),
			segments:  paint.SegmentB8 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentD0,
			clearance: 88,
		},
	},
}

var diagDown25ToFlatPiece = trackPiece{
	normal: []trackTile{
		{ // 0
			sprites: [4][]trackSprite{
				{},
				{},
				{},
				{{16398, xyz(-16, -16, 0), box(-16, -16, 0, 32, 32, 3)}},
			},
			segments:  paint.SegmentBC | paint.SegmentC4 | paint.SegmentCC | paint.SegmentD4,
			clearance: 48,
		},
		{ // 1
			sprites: [4][]trackSprite{
				{{16399, xyz(-16, -16, 0), box(-16, -16, 0, 32, 32, 3)}},
				{},
				{},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubes, [4]int8{1, 0, 2, 3}, 4, 0),
			segments:  paint.SegmentB4 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentCC,
			clearance: 48,
		},
		{ // 2
			sprites: [4][]trackSprite{
				{},
				{},
				{{16400, xyz(-16, -16, 0), box(-16, -16, 0, 32, 32, 3)}},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubes, [4]int8{2, 3, 1, 0}, 4, 0),
			segments:  paint.SegmentC0 | paint.SegmentC4 | paint.SegmentD0 | paint.SegmentD4,
			clearance: 48,
		},
		{ // 3
			sprites: [4][]trackSprite{
				{},
				{{16401, xyz(-16, -16, 0), box(-16, -16, 0, 32, 32, 3)}},
				{},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubes, [4]int8{0, 1, 3, 2}, 4, 0),
			segments:  paint.SegmentB8 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentD0,
			clearance: 48,
		},
	},
	chain: []trackTile{
		{ // 0
			sprites: [4][]trackSprite{
				{},
				{},
				{},
				{{16402, xyz(-16, -16, 0), box(-16, -16, 0, 32, 32, 3)}},
			},
			segments:  paint.SegmentBC | paint.SegmentC4 | paint.SegmentCC | paint.SegmentD4,
			clearance: 48,
		},
		{ // 1
			sprites: [4][]trackSprite{
				{{16403, xyz(-16, -16, 0), box(-16, -16, 0, 32, 32, 3)}},
				{},
				{},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubes, [4]int8{1, 0, 2, 3}, 4, 0),
			segments:  paint.SegmentB4 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentCC,
			clearance: 48,
		},
		{ // 2
			sprites: [4][]trackSprite{
				{},
				{},
				{{16404, xyz(-16, -16, 0), box(-16, -16, 0, 32, 32, 3)}},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubes, [4]int8{2, 3, 1, 0}, 4, 0),
			segments:  paint.SegmentC0 | paint.SegmentC4 | paint.SegmentD0 | paint.SegmentD4,
			clearance: 48,
		},
		{ // 3
			sprites: [4][]trackSprite{
				{},
				{{16405, xyz(-16, -16, 0), box(-16, -16, 0, 32, 32, 3)}},
				{},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubes, [4]int8{0, 1, 3, 2}, 4, 0),
			segments:  paint.SegmentB8 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentD0,
			clearance: 48,
		},
	},
	inverted: []trackTile{
		{ // 0
			sprites: [4][]trackSprite{
				{},
				{},
				{},
				{{26729, xyz(-16, -16, 24), box(-16, -16, 22, 32, 32, 3)}},
			},
			segments:  paint.SegmentBC | paint.SegmentC4 | paint.SegmentCC | paint.SegmentD4,
			clearance: 64,
		},
		{ // 1
			sprites: [4][]trackSprite{
				{{26730, xyz(-16, -16, 24), box(-16, -16, 22, 32, 32, 3)}},
				{},
				{},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubesInverted, [4]int8{1, 0, 2, 3}, 4, 36),
			segments:  paint.SegmentB4 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentCC,
			clearance: 64,
		},
		{ // 2
			sprites: [4][]trackSprite{
				{},
				{},
				{{26731, xyz(-16, -16, 24), box(-16, -16, 22, 32, 32, 3)}},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubesInverted, [4]int8{2, 3, 1, 0}, 4, 36),
			segments:  paint.SegmentC0 | paint.SegmentC4 | paint.SegmentD0 | paint.SegmentD4,
			clearance: 64,
		},
		{ // 3
			sprites: [4][]trackSprite{
				{},
				{{26732, xyz(-16, -16, 24), box(-16, -16, 22, 32, 32, 3)}},
				{},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubesInverted, [4]int8{0, 1, 3, 2}, 4, 36),
			segments:  paint.SegmentB8 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentD0,
			clearance: 64,
		},
	},
}

var diagFlatToLeftBankPiece = trackPiece{
	normal: []trackTile{
		{ // 0
			sprites: [4][]trackSprite{
				{},
				{},
				{},
				{{16406, xyz(-16, -16, 0), box(-16, -16, 0, 32, 32, 3)}},
			},
			segments:  paint.SegmentBC | paint.SegmentC4 | paint.SegmentCC | paint.SegmentD4,
			clearance: 32,
		},
		{ // 1
			sprites: [4][]trackSprite{
				{{16407, xyz(-16, -16, 0), box(-16, -16, 0, 32, 32, 3)}, {16408, xyz(-16, -16, 0), box(-16, -16, 27, 32, 32, 0)}},
				{},
				{},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubes, [4]int8{1, 0, 2, 3}, 0, 0),
			segments:  paint.SegmentB4 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentCC,
			clearance: 32,
		},
		{ // 2
			sprites: [4][]trackSprite{
				{},
				{},
				{{16409, xyz(-16, -16, 0), box(-16, -16, 0, 32, 32, 3)}},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubes, [4]int8{2, 3, 1, 0}, 0, 0),
			segments:  paint.SegmentC0 | paint.SegmentC4 | paint.SegmentD0 | paint.SegmentD4,
			clearance: 32,
		},
		{ // 3
			sprites: [4][]trackSprite{
				{},
				{{16410, xyz(-16, -16, 0), box(-16, -16, 0, 32, 32, 3)}},
				{},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubes, [4]int8{0, 1, 3, 2}, 0, 0),
			segments:  paint.SegmentB8 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentD0,
			clearance: 32,
		},
	},
	inverted: []trackTile{
		{ // 0
			sprites: [4][]trackSprite{
				{},
				{},
				{},
				{{26733, xyz(-16, -16, 24), box(-16, -16, 22, 32, 32, 3)}},
			},
			segments:  paint.SegmentBC | paint.SegmentC4 | paint.SegmentCC | paint.SegmentD4,
			clearance: 48,
		},
		{ // 1
			sprites: [4][]trackSprite{
				{{26734, xyz(-16, -16, 24), box(-16, -16, 22, 32, 32, 3)}, {26735, xyz(-16, -16, 24), box(-16, -16, 49, 32, 32, 0)}},
				{},
				{},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubesInverted, [4]int8{1, 0, 2, 3}, 0, 36),
			segments:  paint.SegmentB4 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentCC,
			clearance: 48,
		},
		{ // 2
			sprites: [4][]trackSprite{
				{},
				{},
				{{26736, xyz(-16, -16, 24), box(-16, -16, 22, 32, 32, 3)}},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubesInverted, [4]int8{2, 3, 1, 0}, 0, 36),
			segments:  paint.SegmentC0 | paint.SegmentC4 | paint.SegmentD0 | paint.SegmentD4,
			clearance: 48,
		},
		{ // 3
			sprites: [4][]trackSprite{
				{},
				{{26737, xyz(-16, -16, 24), box(-16, -16, 22, 32, 32, 3)}},
				{},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubesInverted, [4]int8{0, 1, 3, 2}, 0, 36),
			segments:  paint.SegmentB8 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentD0,
			clearance: 48,
		},
	},
}

var diagFlatToRightBankPiece = trackPiece{
	normal: []trackTile{
		{ // 0
			sprites: [4][]trackSprite{
				{},
				{},
				{},
				{{16411, xyz(-16, -16, 0), box(-16, -16, 0, 32, 32, 3)}},
			},
			segments:  paint.SegmentBC | paint.SegmentC4 | paint.SegmentCC | paint.SegmentD4,
			clearance: 32,
		},
		{ // 1
			sprites: [4][]trackSprite{
				{{16412, xyz(-16, -16, 0), box(-16, -16, 0, 32, 32, 3)}},
				{},
				{},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubes, [4]int8{1, 0, 2, 3}, 0, 0),
			segments:  paint.SegmentB4 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentCC,
			clearance: 32,
		},
		{ // 2
			sprites: [4][]trackSprite{
				{},
				{},
				{{16413, xyz(-16, -16, 0), box(-16, -16, 0, 32, 32, 3)}, {16414, xyz(-16, -16, 0), box(-16, -16, 27, 32, 32, 0)}},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubes, [4]int8{2, 3, 1, 0}, 0, 0),
			segments:  paint.SegmentC0 | paint.SegmentC4 | paint.SegmentD0 | paint.SegmentD4,
			clearance: 32,
		},
		{ // 3
			sprites: [4][]trackSprite{
				{},
				{{16415, xyz(-16, -16, 0), box(-16, -16, 0, 32, 32, 3)}},
				{},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubes, [4]int8{0, 1, 3, 2}, 0, 0),
			segments:  paint.SegmentB8 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentD0,
			clearance: 32,
		},
	},
	inverted: []trackTile{
		{ // 0
			sprites: [4][]trackSprite{
				{},
				{},
				{},
				{{26738, xyz(-16, -16, 24), box(-16, -16, 22, 32, 32, 3)}},
			},
			segments:  paint.SegmentBC | paint.SegmentC4 | paint.SegmentCC | paint.SegmentD4,
			clearance: 48,
		},
		{ // 1
			sprites: [4][]trackSprite{
				{{26739, xyz(-16, -16, 24), box(-16, -16, 22, 32, 32, 3)}},
				{},
				{},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubesInverted, [4]int8{1, 0, 2, 3}, 0, 36),
			segments:  paint.SegmentB4 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentCC,
			clearance: 48,
		},
		{ // 2
			sprites: [4][]trackSprite{
				{},
				{},
				{{26740, xyz(-16, -16, 24), box(-16, -16, 22, 32, 32, 3)}, {26741, xyz(-16, -16, 24), box(-16, -16, 49, 32, 32, 0)}},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubesInverted, [4]int8{2, 3, 1, 0}, 0, 36),
			segments:  paint.SegmentC0 | paint.SegmentC4 | paint.SegmentD0 | paint.SegmentD4,
			clearance: 48,
		},
		{ // 3
			sprites: [4][]trackSprite{
				{},
				{{26742, xyz(-16, -16, 24), box(-16, -16, 22, 32, 32, 3)}},
				{},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubesInverted, [4]int8{0, 1, 3, 2}, 0, 36),
			segments:  paint.SegmentB8 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentD0,
			clearance: 48,
		},
	},
}

var diagLeftBankToFlatPiece = trackPiece{
	normal: []trackTile{
		{ // 0
			sprites: [4][]trackSprite{
				{},
				{},
				{},
				{{16416, xyz(-16, -16, 0), box(-16, -16, 0, 32, 32, 3)}},
			},
			segments:  paint.SegmentBC | paint.SegmentC4 | paint.SegmentCC | paint.SegmentD4,
			clearance: 32,
		},
		{ // 1
			sprites: [4][]trackSprite{
				{{16417, xyz(-16, -16, 0), box(-16, -16, 0, 32, 32, 3)}, {16418, xyz(-16, -16, 0), box(-16, -16, 27, 32, 32, 0)}},
				{},
				{},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubes, [4]int8{1, 0, 2, 3}, 0, 0),
			segments:  paint.SegmentB4 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentCC,
			clearance: 32,
		},
		{ // 2
			sprites: [4][]trackSprite{
				{},
				{},
				{{16419, xyz(-16, -16, 0), box(-16, -16, 0, 32, 32, 3)}},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubes, [4]int8{2, 3, 1, 0}, 0, 0),
			segments:  paint.SegmentC0 | paint.SegmentC4 | paint.SegmentD0 | paint.SegmentD4,
			clearance: 32,
		},
		{ // 3
			sprites: [4][]trackSprite{
				{},
				{{16420, xyz(-16, -16, 0), box(-16, -16, 0, 32, 32, 3)}},
				{},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubes, [4]int8{0, 1, 3, 2}, 0, 0),
			segments:  paint.SegmentB8 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentD0,
			clearance: 32,
		},
	},
	inverted: []trackTile{
		{ // 0
			sprites: [4][]trackSprite{
				{},
				{},
				{},
				{{26743, xyz(-16, -16, 24), box(-16, -16, 22, 32, 32, 3)}},
			},
			segments:  paint.SegmentBC | paint.SegmentC4 | paint.SegmentCC | paint.SegmentD4,
			clearance: 48,
		},
		{ // 1
			sprites: [4][]trackSprite{
				{{26744, xyz(-16, -16, 24), box(-16, -16, 22, 32, 32, 3)}, {26745, xyz(-16, -16, 24), box(-16, -16, 49, 32, 32, 0)}},
				{},
				{},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubesInverted, [4]int8{1, 0, 2, 3}, 0, 36),
			segments:  paint.SegmentB4 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentCC,
			clearance: 48,
		},
		{ // 2
			sprites: [4][]trackSprite{
				{},
				{},
				{{26746, xyz(-16, -16, 24), box(-16, -16, 22, 32, 32, 3)}},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubesInverted, [4]int8{2, 3, 1, 0}, 0, 36),
			segments:  paint.SegmentC0 | paint.SegmentC4 | paint.SegmentD0 | paint.SegmentD4,
			clearance: 48,
		},
		{ // 3
			sprites: [4][]trackSprite{
				{},
				{{26747, xyz(-16, -16, 24), box(-16, -16, 22, 32, 32, 3)}},
				{},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubesInverted, [4]int8{0, 1, 3, 2}, 0, 36),
			segments:  paint.SegmentB8 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentD0,
			clearance: 48,
		},
	},
}

var diagRightBankToFlatPiece = trackPiece{
	normal: []trackTile{
		{ // 0
			sprites: [4][]trackSprite{
				{},
				{},
				{},
				{{16421, xyz(-16, -16, 0), box(-16, -16, 0, 32, 32, 3)}},
			},
			segments:  paint.SegmentBC | paint.SegmentC4 | paint.SegmentCC | paint.SegmentD4,
			clearance: 32,
		},
		{ // 1
			sprites: [4][]trackSprite{
				{{16422, xyz(-16, -16, 0), box(-16, -16, 0, 32, 32, 3)}},
				{},
				{},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubes, [4]int8{1, 0, 2, 3}, 0, 0),
			segments:  paint.SegmentB4 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentCC,
			clearance: 32,
		},
		{ // 2
			sprites: [4][]trackSprite{
				{},
				{},
				{{16423, xyz(-16, -16, 0), box(-16, -16, 0, 32, 32, 3)}, {16424, xyz(-16, -16, 0), box(-16, -16, 27, 32, 32, 0)}},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubes, [4]int8{2, 3, 1, 0}, 0, 0),
			segments:  paint.SegmentC0 | paint.SegmentC4 | paint.SegmentD0 | paint.SegmentD4,
			clearance: 32,
		},
		{ // 3
			sprites: [4][]trackSprite{
				{},
				{{16425, xyz(-16, -16, 0), box(-16, -16, 0, 32, 32, 3)}},
				{},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubes, [4]int8{0, 1, 3, 2}, 0, 0),
			segments:  paint.SegmentB8 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentD0,
			clearance: 32,
		},
	},
	inverted: []trackTile{
		{ // 0
			sprites: [4][]trackSprite{
				{},
				{},
				{},
				{{26748, xyz(-16, -16, 24), box(-16, -16, 22, 32, 32, 3)}},
			},
			segments:  paint.SegmentBC | paint.SegmentC4 | paint.SegmentCC | paint.SegmentD4,
			clearance: 48,
		},
		{ // 1
			sprites: [4][]trackSprite{
				{{26749, xyz(-16, -16, 24), box(-16, -16, 22, 32, 32, 3)}},
				{},
				{},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubesInverted, [4]int8{1, 0, 2, 3}, 0, 36),
			segments:  paint.SegmentB4 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentCC,
			clearance: 48,
		},
		{ // 2
			sprites: [4][]trackSprite{
				{},
				{},
				{{26750, xyz(-16, -16, 24), box(-16, -16, 22, 32, 32, 3)}, {26751, xyz(-16, -16, 24), box(-16, -16, 49, 32, 32, 0)}},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubesInverted, [4]int8{2, 3, 1, 0}, 0, 36),
			segments:  paint.SegmentC0 | paint.SegmentC4 | paint.SegmentD0 | paint.SegmentD4,
			clearance: 48,
		},
		{ // 3
			sprites: [4][]trackSprite{
				{},
				{{26752, xyz(-16, -16, 24), box(-16, -16, 22, 32, 32, 3)}},
				{},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubesInverted, [4]int8{0, 1, 3, 2}, 0, 36),
			segments:  paint.SegmentB8 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentD0,
			clearance: 48,
		},
	},
}

var diagLeftBankToUp25Piece = trackPiece{
	normal: []trackTile{
		{ // 0
			sprites: [4][]trackSprite{
				{},
				{},
				{},
				{{16426, xyz(-16, -16, 0), box(-16, -16, 0, 32, 32, 3)}},
			},
			segments:  paint.SegmentBC | paint.SegmentC4 | paint.SegmentCC | paint.SegmentD4,
			clearance: 48,
		},
		{ // 1
			sprites: [4][]trackSprite{
				{{16427, xyz(-16, -16, 0), box(-16, -16, 0, 32, 32, 3)}, {16428, xyz(-16, -16, 0), box(-16, -16, 27, 32, 32, 0)}},
				{},
				{},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubes, [4]int8{1, 0, 2, 3}, 4, 0),
			segments:  paint.SegmentB4 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentCC,
			clearance: 48,
		},
		{ // 2
			sprites: [4][]trackSprite{
				{},
				{},
				{{16429, xyz(-16, -16, 0), box(-16, -16, 0, 32, 32, 3)}},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubes, [4]int8{2, 3, 1, 0}, 4, 0),
			segments:  paint.SegmentC0 | paint.SegmentC4 | paint.SegmentD0 | paint.SegmentD4,
			clearance: 48,
		},
		{ // 3
			sprites: [4][]trackSprite{
				{},
				{{16430, xyz(-16, -16, 0), box(-16, -16, 0, 32, 32, 3)}},
				{},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubes, [4]int8{0, 1, 3, 2}, 4, 0),
			segments:  paint.SegmentB8 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentD0,
			clearance: 48,
		},
	},
	inverted: []trackTile{
		{ // 0
			sprites: [4][]trackSprite{
				{},
				{},
				{},
				{{26753, xyz(-16, -16, 24), box(-16, -16, 22, 32, 32, 3)}},
			},
			segments:  paint.SegmentBC | paint.SegmentC4 | paint.SegmentCC | paint.SegmentD4,
			clearance: 64,
		},
		{ // 1
			sprites: [4][]trackSprite{
				{{26754, xyz(-16, -16, 24), box(-16, -16, 22, 32, 32, 3)}, {26755, xyz(-16, -16, 24), box(-16, -16, 49, 32, 32, 0)}},
				{},
				{},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubesInverted, [4]int8{1, 0, 2, 3}, 4, 36),
			segments:  paint.SegmentB4 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentCC,
			clearance: 64,
		},
		{ // 2
			sprites: [4][]trackSprite{
				{},
				{},
				{{26756, xyz(-16, -16, 24), box(-16, -16, 22, 32, 32, 3)}},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubesInverted, [4]int8{2, 3, 1, 0}, 4, 36),
			segments:  paint.SegmentC0 | paint.SegmentC4 | paint.SegmentD0 | paint.SegmentD4,
			clearance: 64,
		},
		{ // 3
			sprites: [4][]trackSprite{
				{},
				{{26757, xyz(-16, -16, 24), box(-16, -16, 22, 32, 32, 3)}},
				{},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubesInverted, [4]int8{0, 1, 3, 2}, 4, 36),
			segments:  paint.SegmentB8 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentD0,
			clearance: 64,
		},
	},
}

var diagRightBankToUp25Piece = trackPiece{
	normal: []trackTile{
		{ // 0
			sprites: [4][]trackSprite{
				{},
				{},
				{},
				{{16431, xyz(-16, -16, 0), box(-16, -16, 0, 32, 32, 3)}},
			},
			segments:  paint.SegmentBC | paint.SegmentC4 | paint.SegmentCC | paint.SegmentD4,
			clearance: 48,
		},
		{ // 1
			sprites: [4][]trackSprite{
				{{16432, xyz(-16, -16, 0), box(-16, -16, 0, 32, 32, 3)}},
				{},
				{},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubes, [4]int8{1, 0, 2, 3}, 4, 0),
			segments:  paint.SegmentB4 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentCC,
			clearance: 48,
		},
		{ // 2
			sprites: [4][]trackSprite{
				{},
				{},
				{{16433, xyz(-16, -16, 0), box(-16, -16, 0, 32, 32, 3)}, {16434, xyz(-16, -16, 0), box(-16, -16, 27, 32, 32, 0)}},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubes, [4]int8{2, 3, 1, 0}, 4, 0),
			segments:  paint.SegmentC0 | paint.SegmentC4 | paint.SegmentD0 | paint.SegmentD4,
			clearance: 48,
		},
		{ // 3
			sprites: [4][]trackSprite{
				{},
				{{16435, xyz(-16, -16, 0), box(-16, -16, 0, 32, 32, 3)}},
				{},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubes, [4]int8{0, 1, 3, 2}, 4, 0),
			segments:  paint.SegmentB8 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentD0,
			clearance: 48,
		},
	},
	inverted: []trackTile{
		{ // 0
			sprites: [4][]trackSprite{
				{},
				{},
				{},
				{{26758, xyz(-16, -16, 24), box(-16, -16, 22, 32, 32, 3)}},
			},
			segments:  paint.SegmentBC | paint.SegmentC4 | paint.SegmentCC | paint.SegmentD4,
			clearance: 64,
		},
		{ // 1
			sprites: [4][]trackSprite{
				{{26759, xyz(-16, -16, 24), box(-16, -16, 22, 32, 32, 3)}},
				{},
				{},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubesInverted, [4]int8{1, 0, 2, 3}, 4, 36),
			segments:  paint.SegmentB4 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentCC,
			clearance: 64,
		},
		{ // 2
			sprites: [4][]trackSprite{
				{},
				{},
				{{26760, xyz(-16, -16, 24), box(-16, -16, 22, 32, 32, 3)}, {26761, xyz(-16, -16, 24), box(-16, -16, 49, 32, 32, 0)}},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubesInverted, [4]int8{2, 3, 1, 0}, 4, 36),
			segments:  paint.SegmentC0 | paint.SegmentC4 | paint.SegmentD0 | paint.SegmentD4,
			clearance: 64,
		},
		{ // 3
			sprites: [4][]trackSprite{
				{},
				{{26762, xyz(-16, -16, 24), box(-16, -16, 22, 32, 32, 3)}},
				{},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubesInverted, [4]int8{0, 1, 3, 2}, 4, 36),
			segments:  paint.SegmentB8 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentD0,
			clearance: 64,
		},
	},
}

var diagUp25ToLeftBankPiece = trackPiece{
	normal: []trackTile{
		{ // 0
			sprites: [4][]trackSprite{
				{},
				{},
				{},
				{{16436, xyz(-16, -16, 0), box(-16, -16, 0, 32, 32, 3)}},
			},
			segments:  paint.SegmentBC | paint.SegmentC4 | paint.SegmentCC | paint.SegmentD4,
			clearance: 40,
		},
		{ // 1
			sprites: [4][]trackSprite{
				{{16437, xyz(-16, -16, 0), box(-16, -16, 0, 32, 32, 3)}, {16438, xyz(-16, -16, 0), box(-16, -16, 27, 32, 32, 0)}},
				{},
				{},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubes, [4]int8{1, 0, 2, 3}, 4, 0),
			segments:  paint.SegmentB4 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentCC,
			clearance: 40,
		},
		{ // 2
			sprites: [4][]trackSprite{
				{},
				{},
				{{16439, xyz(-16, -16, 0), box(-16, -16, 0, 32, 32, 3)}},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubes, [4]int8{2, 3, 1, 0}, 4, 0),
			segments:  paint.SegmentC0 | paint.SegmentC4 | paint.SegmentD0 | paint.SegmentD4,
			clearance: 40,
		},
		{ // 3
			sprites: [4][]trackSprite{
				{},
				{{16440, xyz(-16, -16, 0), box(-16, -16, 0, 32, 32, 3)}},
				{},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubes, [4]int8{0, 1, 3, 2}, 4, 0),
			segments:  paint.SegmentB8 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentD0,
			clearance: 40,
		},
	},
	inverted: []trackTile{
		{ // 0
			sprites: [4][]trackSprite{
				{},
				{},
				{},
				{{26763, xyz(-16, -16, 24), box(-16, -16, 22, 32, 32, 3)}},
			},
			segments:  paint.SegmentBC | paint.SegmentC4 | paint.SegmentCC | paint.SegmentD4,
			clearance: 56,
		},
		{ // 1
			sprites: [4][]trackSprite{
				{{26764, xyz(-16, -16, 24), box(-16, -16, 22, 32, 32, 3)}, {26765, xyz(-16, -16, 24), box(-16, -16, 49, 32, 32, 0)}},
				{},
				{},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubesInverted, [4]int8{1, 0, 2, 3}, 4, 36),
			segments:  paint.SegmentB4 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentCC,
			clearance: 56,
		},
		{ // 2
			sprites: [4][]trackSprite{
				{},
				{},
				{{26766, xyz(-16, -16, 24), box(-16, -16, 22, 32, 32, 3)}},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubesInverted, [4]int8{2, 3, 1, 0}, 4, 36),
			segments:  paint.SegmentC0 | paint.SegmentC4 | paint.SegmentD0 | paint.SegmentD4,
			clearance: 56,
		},
		{ // 3
			sprites: [4][]trackSprite{
				{},
				{{26767, xyz(-16, -16, 24), box(-16, -16, 22, 32, 32, 3)}},
				{},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubesInverted, [4]int8{0, 1, 3, 2}, 4, 36),
			segments:  paint.SegmentB8 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentD0,
			clearance: 56,
		},
	},
}

var diagUp25ToRightBankPiece = trackPiece{
	normal: []trackTile{
		{ // 0
			sprites: [4][]trackSprite{
				{},
				{},
				{},
				{{16441, xyz(-16, -16, 0), box(-16, -16, 0, 32, 32, 3)}},
			},
			segments:  paint.SegmentBC | paint.SegmentC4 | paint.SegmentCC | paint.SegmentD4,
			clearance: 40,
		},
		{ // 1
			sprites: [4][]trackSprite{
				{{16442, xyz(-16, -16, 0), box(-16, -16, 0, 32, 32, 3)}},
				{},
				{},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubes, [4]int8{1, 0, 2, 3}, 4, 0),
			segments:  paint.SegmentB4 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentCC,
			clearance: 40,
		},
		{ // 2
			sprites: [4][]trackSprite{
				{},
				{},
				{{16443, xyz(-16, -16, 0), box(-16, -16, 0, 32, 32, 3)}, {16444, xyz(-16, -16, 0), box(-16, -16, 27, 32, 32, 0)}},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubes, [4]int8{2, 3, 1, 0}, 4, 0),
			segments:  paint.SegmentC0 | paint.SegmentC4 | paint.SegmentD0 | paint.SegmentD4,
			clearance: 40,
		},
		{ // 3
			sprites: [4][]trackSprite{
				{},
				{{16445, xyz(-16, -16, 0), box(-16, -16, 0, 32, 32, 3)}},
				{},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubes, [4]int8{0, 1, 3, 2}, 4, 0),
			segments:  paint.SegmentB8 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentD0,
			clearance: 40,
		},
	},
	inverted: []trackTile{
		{ // 0
			sprites: [4][]trackSprite{
				{},
				{},
				{},
				{{26768, xyz(-16, -16, 24), box(-16, -16, 22, 32, 32, 3)}},
			},
			segments:  paint.SegmentBC | paint.SegmentC4 | paint.SegmentCC | paint.SegmentD4,
			clearance: 56,
		},
		{ // 1
			sprites: [4][]trackSprite{
				{{26769, xyz(-16, -16, 24), box(-16, -16, 22, 32, 32, 3)}},
				{},
				{},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubesInverted, [4]int8{1, 0, 2, 3}, 4, 36),
			segments:  paint.SegmentB4 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentCC,
			clearance: 56,
		},
		{ // 2
			sprites: [4][]trackSprite{
				{},
				{},
				{{26770, xyz(-16, -16, 24), box(-16, -16, 22, 32, 32, 3)}, {26771, xyz(-16, -16, 24), box(-16, -16, 49, 32, 32, 0)}},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubesInverted, [4]int8{2, 3, 1, 0}, 4, 36),
			segments:  paint.SegmentC0 | paint.SegmentC4 | paint.SegmentD0 | paint.SegmentD4,
			clearance: 56,
		},
		{ // 3
			sprites: [4][]trackSprite{
				{},
				{{26772, xyz(-16, -16, 24), box(-16, -16, 22, 32, 32, 3)}},
				{},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubesInverted, [4]int8{0, 1, 3, 2}, 4, 36),
			segments:  paint.SegmentB8 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentD0,
			clearance: 56,
		},
	},
}

var diagLeftBankToDown25Piece = trackPiece{
	normal: []trackTile{
		{ // 0
			sprites: [4][]trackSprite{
				{},
				{},
				{},
				{{16446, xyz(-16, -16, 0), box(-16, -16, 0, 32, 32, 3)}},
			},
			segments:  paint.SegmentBC | paint.SegmentC4 | paint.SegmentCC | paint.SegmentD4,
			clearance: 40,
		},
		{ // 1
			sprites: [4][]trackSprite{
				{{16447, xyz(-16, -16, 0), box(-16, -16, 0, 32, 32, 3)}, {16448, xyz(-16, -16, 0), box(-16, -16, 27, 32, 32, 0)}},
				{},
				{},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubes, [4]int8{1, 0, 2, 3}, 4, 0),
			segments:  paint.SegmentB4 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentCC,
			clearance: 40,
		},
		{ // 2
			sprites: [4][]trackSprite{
				{},
				{},
				{{16449, xyz(-16, -16, 0), box(-16, -16, 0, 32, 32, 3)}},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubes, [4]int8{2, 3, 1, 0}, 4, 0),
			segments:  paint.SegmentC0 | paint.SegmentC4 | paint.SegmentD0 | paint.SegmentD4,
			clearance: 40,
		},
		{ // 3
			sprites: [4][]trackSprite{
				{},
				{{16450, xyz(-16, -16, 0), box(-16, -16, 0, 32, 32, 3)}},
				{},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubes, [4]int8{0, 1, 3, 2}, 4, 0),
			segments:  paint.SegmentB8 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentD0,
			clearance: 40,
		},
	},
	inverted: []trackTile{
		{ // 0
			sprites: [4][]trackSprite{
				{},
				{},
				{},
				{{26773, xyz(-16, -16, 24), box(-16, -16, 22, 32, 32, 3)}},
			},
			segments:  paint.SegmentBC | paint.SegmentC4 | paint.SegmentCC | paint.SegmentD4,
			clearance: 56,
		},
		{ // 1
			sprites: [4][]trackSprite{
				{{26774, xyz(-16, -16, 24), box(-16, -16, 22, 32, 32, 3)}, {26775, xyz(-16, -16, 24), box(-16, -16, 49, 32, 32, 0)}},
				{},
				{},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubesInverted, [4]int8{1, 0, 2, 3}, 4, 36),
			segments:  paint.SegmentB4 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentCC,
			clearance: 56,
		},
		{ // 2
			sprites: [4][]trackSprite{
				{},
				{},
				{{26776, xyz(-16, -16, 24), box(-16, -16, 22, 32, 32, 3)}},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubesInverted, [4]int8{2, 3, 1, 0}, 4, 36),
			segments:  paint.SegmentC0 | paint.SegmentC4 | paint.SegmentD0 | paint.SegmentD4,
			clearance: 56,
		},
		{ // 3
			sprites: [4][]trackSprite{
				{},
				{{26777, xyz(-16, -16, 24), box(-16, -16, 22, 32, 32, 3)}},
				{},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubesInverted, [4]int8{0, 1, 3, 2}, 4, 36),
			segments:  paint.SegmentB8 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentD0,
			clearance: 56,
		},
	},
}

var diagRightBankToDown25Piece = trackPiece{
	normal: []trackTile{
		{ // 0
			sprites: [4][]trackSprite{
				{},
				{},
				{},
				{{16451, xyz(-16, -16, 0), box(-16, -16, 0, 32, 32, 3)}},
			},
			segments:  paint.SegmentBC | paint.SegmentC4 | paint.SegmentCC | paint.SegmentD4,
			clearance: 40,
		},
		{ // 1
			sprites: [4][]trackSprite{
				{{16452, xyz(-16, -16, 0), box(-16, -16, 0, 32, 32, 3)}},
				{},
				{},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubes, [4]int8{1, 0, 2, 3}, 4, 0),
			segments:  paint.SegmentB4 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentCC,
			clearance: 40,
		},
		{ // 2
			sprites: [4][]trackSprite{
				{},
				{},
				{{16453, xyz(-16, -16, 0), box(-16, -16, 0, 32, 32, 3)}, {16454, xyz(-16, -16, 0), box(-16, -16, 27, 32, 32, 0)}},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubes, [4]int8{2, 3, 1, 0}, 4, 0),
			segments:  paint.SegmentC0 | paint.SegmentC4 | paint.SegmentD0 | paint.SegmentD4,
			clearance: 40,
		},
		{ // 3
			sprites: [4][]trackSprite{
				{},
				{{16455, xyz(-16, -16, 0), box(-16, -16, 0, 32, 32, 3)}},
				{},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubes, [4]int8{0, 1, 3, 2}, 4, 0),
			segments:  paint.SegmentB8 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentD0,
			clearance: 40,
		},
	},
	inverted: []trackTile{
		{ // 0
			sprites: [4][]trackSprite{
				{},
				{},
				{},
				{{26778, xyz(-16, -16, 24), box(-16, -16, 22, 32, 32, 3)}},
			},
			segments:  paint.SegmentBC | paint.SegmentC4 | paint.SegmentCC | paint.SegmentD4,
			clearance: 56,
		},
		{ // 1
			sprites: [4][]trackSprite{
				{{26779, xyz(-16, -16, 24), box(-16, -16, 22, 32, 32, 3)}},
				{},
				{},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubesInverted, [4]int8{1, 0, 2, 3}, 4, 36),
			segments:  paint.SegmentB4 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentCC,
			clearance: 56,
		},
		{ // 2
			sprites: [4][]trackSprite{
				{},
				{},
				{{26780, xyz(-16, -16, 24), box(-16, -16, 22, 32, 32, 3)}, {26781, xyz(-16, -16, 24), box(-16, -16, 49, 32, 32, 0)}},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubesInverted, [4]int8{2, 3, 1, 0}, 4, 36),
			segments:  paint.SegmentC0 | paint.SegmentC4 | paint.SegmentD0 | paint.SegmentD4,
			clearance: 56,
		},
		{ // 3
			sprites: [4][]trackSprite{
				{},
				{{26782, xyz(-16, -16, 24), box(-16, -16, 22, 32, 32, 3)}},
				{},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubesInverted, [4]int8{0, 1, 3, 2}, 4, 36),
			segments:  paint.SegmentB8 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentD0,
			clearance: 56,
		},
	},
}

var diagDown25ToLeftBankPiece = trackPiece{
	normal: []trackTile{
		{ // 0
			sprites: [4][]trackSprite{
				{},
				{},
				{},
				{{16456, xyz(-16, -16, 0), box(-16, -16, 0, 32, 32, 3)}},
			},
			segments:  paint.SegmentBC | paint.SegmentC4 | paint.SegmentCC | paint.SegmentD4,
			clearance: 48,
		},
		{ // 1
			sprites: [4][]trackSprite{
				{{16457, xyz(-16, -16, 0), box(-16, -16, 0, 32, 32, 3)}, {16458, xyz(-16, -16, 0), box(-16, -16, 27, 32, 32, 0)}},
				{},
				{},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubes, [4]int8{1, 0, 2, 3}, 4, 0),
			segments:  paint.SegmentB4 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentCC,
			clearance: 48,
		},
		{ // 2
			sprites: [4][]trackSprite{
				{},
				{},
				{{16459, xyz(-16, -16, 0), box(-16, -16, 0, 32, 32, 3)}},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubes, [4]int8{2, 3, 1, 0}, 4, 0),
			segments:  paint.SegmentC0 | paint.SegmentC4 | paint.SegmentD0 | paint.SegmentD4,
			clearance: 48,
		},
		{ // 3
			sprites: [4][]trackSprite{
				{},
				{{16460, xyz(-16, -16, 0), box(-16, -16, 0, 32, 32, 3)}},
				{},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubes, [4]int8{0, 1, 3, 2}, 4, 0),
			segments:  paint.SegmentB8 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentD0,
			clearance: 48,
		},
	},
	inverted: []trackTile{
		{ // 0
			sprites: [4][]trackSprite{
				{},
				{},
				{},
				{{26783, xyz(-16, -16, 24), box(-16, -16, 22, 32, 32, 3)}},
			},
			segments:  paint.SegmentBC | paint.SegmentC4 | paint.SegmentCC | paint.SegmentD4,
			clearance: 64,
		},
		{ // 1
			sprites: [4][]trackSprite{
				{{26784, xyz(-16, -16, 24), box(-16, -16, 22, 32, 32, 3)}, {26785, xyz(-16, -16, 24), box(-16, -16, 49, 32, 32, 0)}},
				{},
				{},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubesInverted, [4]int8{1, 0, 2, 3}, 4, 36),
			segments:  paint.SegmentB4 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentCC,
			clearance: 64,
		},
		{ // 2
			sprites: [4][]trackSprite{
				{},
				{},
				{{26786, xyz(-16, -16, 24), box(-16, -16, 22, 32, 32, 3)}},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubesInverted, [4]int8{2, 3, 1, 0}, 4, 36),
			segments:  paint.SegmentC0 | paint.SegmentC4 | paint.SegmentD0 | paint.SegmentD4,
			clearance: 64,
		},
		{ // 3
			sprites: [4][]trackSprite{
				{},
				{{26787, xyz(-16, -16, 24), box(-16, -16, 22, 32, 32, 3)}},
				{},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubesInverted, [4]int8{0, 1, 3, 2}, 4, 36),
			segments:  paint.SegmentB8 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentD0,
			clearance: 64,
		},
	},
}

var diagDown25ToRightBankPiece = trackPiece{
	normal: []trackTile{
		{ // 0
			sprites: [4][]trackSprite{
				{},
				{},
				{},
				{{16461, xyz(-16, -16, 0), box(-16, -16, 0, 32, 32, 3)}},
			},
			segments:  paint.SegmentBC | paint.SegmentC4 | paint.SegmentCC | paint.SegmentD4,
			clearance: 48,
		},
		{ // 1
			sprites: [4][]trackSprite{
				{{16462, xyz(-16, -16, 0), box(-16, -16, 0, 32, 32, 3)}},
				{},
				{},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubes, [4]int8{1, 0, 2, 3}, 4, 0),
			segments:  paint.SegmentB4 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentCC,
			clearance: 48,
		},
		{ // 2
			sprites: [4][]trackSprite{
				{},
				{},
				{{16463, xyz(-16, -16, 0), box(-16, -16, 0, 32, 32, 3)}, {16464, xyz(-16, -16, 0), box(-16, -16, 27, 32, 32, 0)}},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubes, [4]int8{2, 3, 1, 0}, 4, 0),
			segments:  paint.SegmentC0 | paint.SegmentC4 | paint.SegmentD0 | paint.SegmentD4,
			clearance: 48,
		},
		{ // 3
			sprites: [4][]trackSprite{
				{},
				{{16465, xyz(-16, -16, 0), box(-16, -16, 0, 32, 32, 3)}},
				{},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubes, [4]int8{0, 1, 3, 2}, 4, 0),
			segments:  paint.SegmentB8 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentD0,
			clearance: 48,
		},
	},
	inverted: []trackTile{
		{ // 0
			sprites: [4][]trackSprite{
				{},
				{},
				{},
				{{26788, xyz(-16, -16, 24), box(-16, -16, 22, 32, 32, 3)}},
			},
			segments:  paint.SegmentBC | paint.SegmentC4 | paint.SegmentCC | paint.SegmentD4,
			clearance: 64,
		},
		{ // 1
			sprites: [4][]trackSprite{
				{{26789, xyz(-16, -16, 24), box(-16, -16, 22, 32, 32, 3)}},
				{},
				{},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubesInverted, [4]int8{1, 0, 2, 3}, 4, 36),
			segments:  paint.SegmentB4 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentCC,
			clearance: 64,
		},
		{ // 2
			sprites: [4][]trackSprite{
				{},
				{},
				{{26790, xyz(-16, -16, 24), box(-16, -16, 22, 32, 32, 3)}, {26791, xyz(-16, -16, 24), box(-16, -16, 49, 32, 32, 0)}},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubesInverted, [4]int8{2, 3, 1, 0}, 4, 36),
			segments:  paint.SegmentC0 | paint.SegmentC4 | paint.SegmentD0 | paint.SegmentD4,
			clearance: 64,
		},
		{ // 3
			sprites: [4][]trackSprite{
				{},
				{{26792, xyz(-16, -16, 24), box(-16, -16, 22, 32, 32, 3)}},
				{},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubesInverted, [4]int8{0, 1, 3, 2}, 4, 36),
			segments:  paint.SegmentB8 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentD0,
			clearance: 64,
		},
	},
}

var diagLeftBankPiece = trackPiece{
	normal: []trackTile{
		{ // 0
			sprites: [4][]trackSprite{
				{},
				{},
				{},
				{{16466, xyz(-16, -16, 0), box(-16, -16, 0, 32, 32, 3)}},
			},
			segments:  paint.SegmentBC | paint.SegmentC4 | paint.SegmentCC | paint.SegmentD4,
			clearance: 32,
		},
		{ // 1
			sprites: [4][]trackSprite{
				{{16467, xyz(-16, -16, 0), box(-16, -16, 0, 32, 32, 3)}},
				{},
				{},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubes, [4]int8{1, 0, 2, 3}, 0, 0),
			segments:  paint.SegmentB4 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentCC,
			clearance: 32,
		},
		{ // 2
			sprites: [4][]trackSprite{
				{},
				{},
				{{16468, xyz(-16, -16, 0), box(-16, -16, 0, 32, 32, 3)}},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubes, [4]int8{2, 3, 1, 0}, 0, 0),
			segments:  paint.SegmentC0 | paint.SegmentC4 | paint.SegmentD0 | paint.SegmentD4,
			clearance: 32,
		},
		{ // 3
			sprites: [4][]trackSprite{
				{},
				{{16469, xyz(-16, -16, 0), box(-16, -16, 0, 32, 32, 3)}},
				{},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubes, [4]int8{0, 1, 3, 2}, 0, 0),
			segments:  paint.SegmentB8 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentD0,
			clearance: 32,
		},
	},
	inverted: []trackTile{
		{ // 0
			sprites: [4][]trackSprite{
				{},
				{},
				{},
				{{26793, xyz(-16, -16, 24), box(-16, -16, 22, 32, 32, 3)}},
			},
			segments:  paint.SegmentBC | paint.SegmentC4 | paint.SegmentCC | paint.SegmentD4,
			clearance: 48,
		},
		{ // 1
			sprites: [4][]trackSprite{
				{{26794, xyz(-16, -16, 24), box(-16, -16, 22, 32, 32, 3)}},
				{},
				{},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubesInverted, [4]int8{1, 0, 2, 3}, 0, 36),
			segments:  paint.SegmentB4 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentCC,
			clearance: 48,
		},
		{ // 2
			sprites: [4][]trackSprite{
				{},
				{},
				{{26795, xyz(-16, -16, 24), box(-16, -16, 22, 32, 32, 3)}},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubesInverted, [4]int8{2, 3, 1, 0}, 0, 36),
			segments:  paint.SegmentC0 | paint.SegmentC4 | paint.SegmentD0 | paint.SegmentD4,
			clearance: 48,
		},
		{ // 3
			sprites: [4][]trackSprite{
				{},
				{{26796, xyz(-16, -16, 24), box(-16, -16, 22, 32, 32, 3)}},
				{},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubesInverted, [4]int8{0, 1, 3, 2}, 0, 36),
			segments:  paint.SegmentB8 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentD0,
			clearance: 48,
		},
	},
}

var diagRightBankPiece = trackPiece{
	normal: []trackTile{
		{ // 0
			sprites: [4][]trackSprite{
				{},
				{},
				{},
				{{16470, xyz(-16, -16, 0), box(-16, -16, 0, 32, 32, 3)}},
			},
			segments:  paint.SegmentBC | paint.SegmentC4 | paint.SegmentCC | paint.SegmentD4,
			clearance: 32,
		},
		{ // 1
			sprites: [4][]trackSprite{
				{{16471, xyz(-16, -16, 0), box(-16, -16, 0, 32, 32, 3)}},
				{},
				{},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubes, [4]int8{1, 0, 2, 3}, 0, 0),
			segments:  paint.SegmentB4 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentCC,
			clearance: 32,
		},
		{ // 2
			sprites: [4][]trackSprite{
				{},
				{},
				{{16472, xyz(-16, -16, 0), box(-16, -16, 0, 32, 32, 3)}},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubes, [4]int8{2, 3, 1, 0}, 0, 0),
			segments:  paint.SegmentC0 | paint.SegmentC4 | paint.SegmentD0 | paint.SegmentD4,
			clearance: 32,
		},
		{ // 3
			sprites: [4][]trackSprite{
				{},
				{{16473, xyz(-16, -16, 0), box(-16, -16, 0, 32, 32, 3)}},
				{},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubes, [4]int8{0, 1, 3, 2}, 0, 0),
			segments:  paint.SegmentB8 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentD0,
			clearance: 32,
		},
	},
	inverted: []trackTile{
		{ // 0
			sprites: [4][]trackSprite{
				{},
				{},
				{},
				{{26797, xyz(-16, -16, 24), box(-16, -16, 22, 32, 32, 3)}},
			},
			segments:  paint.SegmentBC | paint.SegmentC4 | paint.SegmentCC | paint.SegmentD4,
			clearance: 48,
		},
		{ // 1
			sprites: [4][]trackSprite{
				{{26798, xyz(-16, -16, 24), box(-16, -16, 22, 32, 32, 3)}},
				{},
				{},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubesInverted, [4]int8{1, 0, 2, 3}, 0, 36),
			segments:  paint.SegmentB4 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentCC,
			clearance: 48,
		},
		{ // 2
			sprites: [4][]trackSprite{
				{},
				{},
				{{26799, xyz(-16, -16, 24), box(-16, -16, 22, 32, 32, 3)}},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubesInverted, [4]int8{2, 3, 1, 0}, 0, 36),
			segments:  paint.SegmentC0 | paint.SegmentC4 | paint.SegmentD0 | paint.SegmentD4,
			clearance: 48,
		},
		{ // 3
			sprites: [4][]trackSprite{
				{},
				{{26800, xyz(-16, -16, 24), box(-16, -16, 22, 32, 32, 3)}},
				{},
				{},
			},
			support:   metalAPlaced(paint.MetalSupportTubesInverted, [4]int8{0, 1, 3, 2}, 0, 36),
			segments:  paint.SegmentB8 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentD0,
			clearance: 48,
		},
	},
}
