package multidim

import "coasterpaint/internal/paint"

// Flyer twists and the multi-dimension quarter loops.

var leftFlyerTwistUpPiece = trackPiece{
	normal: []trackTile{
		{ // 0
			sprites: [4][]trackSprite{
				{{16486, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}},
				{{16487, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}},
				{{16488, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}},
				{{16489, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}},
			},
			support:   metalA(paint.MetalSupportTubes, paint.SupportPlaceCentre, 0, 0),
			tunnels:   [4]tunnelSpec{rotated(0, paint.TunnelSquareFlat), {}, {}, rotated(0, paint.TunnelSquareFlat)},
			segments:  paint.SegmentsAll,
			clearance: 32,
		},
		{ // 1
			sprites: [4][]trackSprite{
				{{16490, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}, {16491, xyz(0, 0, 0), box(0, 6, 28, 32, 20, 0)}},
				{{16492, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}, {16493, xyz(0, 0, 0), box(0, 6, 28, 32, 20, 0)}},
				{{16494, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}},
				{{16495, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}},
			},
			segments:  paint.SegmentsAll,
			clearance: 48,
		},
		{ // 2
			sprites: [4][]trackSprite{
				{{16496, xyz(0, 0, 24), box(0, 6, 22, 32, 20, 3)}},
				{{16497, xyz(0, 0, 24), box(0, 6, 22, 32, 20, 3)}},
				{{16498, xyz(0, 0, 24), box(0, 6, 22, 32, 20, 3)}},
				{{16499, xyz(0, 0, 24), box(0, 6, 22, 32, 20, 3)}},
			},
			support:   metalA(paint.MetalSupportTubesInverted, paint.SupportPlaceCentre, 0, 36),
			tunnels:   [4]tunnelSpec{{}, rightTunnel(0, paint.TunnelInvertedFlat), leftTunnel(0, paint.TunnelInvertedFlat), {}},
			segments:  paint.SegmentsAll,
			clearance: 48,
		},
	},
	inverted: []trackTile{
		{ // 0
			sprites: [4][]trackSprite{
				{{26801, xyz(0, 0, 24), box(0, 6, 22, 32, 20, 3)}},
				{{26802, xyz(0, 0, 24), box(0, 6, 22, 32, 20, 3)}},
				{{26803, xyz(0, 0, 24), box(0, 6, 22, 32, 20, 3)}},
				{{26804, xyz(0, 0, 24), box(0, 6, 22, 32, 20, 3)}},
			},
			support:   metalA(paint.MetalSupportTubesInverted, paint.SupportPlaceCentre, 0, 36),
			tunnels:   [4]tunnelSpec{rotated(0, paint.TunnelInvertedFlat), {}, {}, rotated(0, paint.TunnelInvertedFlat)},
			segments:  paint.SegmentsAll,
			clearance: 48,
		},
		{ // 1
			sprites: [4][]trackSprite{
				{{26805, xyz(0, 0, 24), box(0, 6, 22, 32, 20, 3)}, {26806, xyz(0, 0, 24), box(0, 6, 50, 32, 20, 0)}},
				{{26807, xyz(0, 0, 24), box(0, 6, 22, 32, 20, 3)}, {26808, xyz(0, 0, 24), box(0, 6, 50, 32, 20, 0)}},
				{{26809, xyz(0, 0, 24), box(0, 6, 22, 32, 20, 3)}},
				{{26810, xyz(0, 0, 24), box(0, 6, 22, 32, 20, 3)}},
			},
			segments:  paint.SegmentsAll,
			clearance: 64,
		},
		{ // 2
			sprites: [4][]trackSprite{
				{{26811, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}},
				{{26812, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}},
				{{26813, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}},
				{{26814, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}},
			},
			support:   metalA(paint.MetalSupportTubes, paint.SupportPlaceCentre, 0, 0),
			tunnels:   [4]tunnelSpec{{}, rightTunnel(0, paint.TunnelSquareFlat), leftTunnel(0, paint.TunnelSquareFlat), {}},
			segments:  paint.SegmentsAll,
			clearance: 32,
		},
	},
}

var rightFlyerTwistUpPiece = trackPiece{
	normal: []trackTile{
		{ // 0
			sprites: [4][]trackSprite{
				{{16500, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}},
				{{16501, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}},
				{{16502, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}},
				{{16503, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}},
			},
			support:   metalA(paint.MetalSupportTubes, paint.SupportPlaceCentre, 0, 0),
			tunnels:   [4]tunnelSpec{rotated(0, paint.TunnelSquareFlat), {}, {}, rotated(0, paint.TunnelSquareFlat)},
			segments:  paint.SegmentsAll,
			clearance: 32,
		},
		{ // 1
			sprites: [4][]trackSprite{
				{{16504, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}},
				{{16505, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}},
				{{16506, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}, {16507, xyz(0, 0, 0), box(0, 6, 28, 32, 20, 0)}},
				{{16508, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}, {16509, xyz(0, 0, 0), box(0, 6, 28, 32, 20, 0)}},
			},
			segments:  paint.SegmentsAll,
			clearance: 48,
		},
		{ // 2
			sprites: [4][]trackSprite{
				{{16510, xyz(0, 0, 24), box(0, 6, 22, 32, 20, 3)}},
				{{16511, xyz(0, 0, 24), box(0, 6, 22, 32, 20, 3)}},
				{{16512, xyz(0, 0, 24), box(0, 6, 22, 32, 20, 3)}},
				{{16513, xyz(0, 0, 24), box(0, 6, 22, 32, 20, 3)}},
			},
			support:   metalA(paint.MetalSupportTubesInverted, paint.SupportPlaceCentre, 0, 36),
			tunnels:   [4]tunnelSpec{{}, rightTunnel(0, paint.TunnelInvertedFlat), leftTunnel(0, paint.TunnelInvertedFlat), {}},
			segments:  paint.SegmentsAll,
			clearance: 48,
		},
	},
	inverted: []trackTile{
		{ // 0
			sprites: [4][]trackSprite{
				{{26815, xyz(0, 0, 24), box(0, 6, 22, 32, 20, 3)}},
				{{26816, xyz(0, 0, 24), box(0, 6, 22, 32, 20, 3)}},
				{{26817, xyz(0, 0, 24), box(0, 6, 22, 32, 20, 3)}},
				{{26818, xyz(0, 0, 24), box(0, 6, 22, 32, 20, 3)}},
			},
			support:   metalA(paint.MetalSupportTubesInverted, paint.SupportPlaceCentre, 0, 36),
			tunnels:   [4]tunnelSpec{rotated(0, paint.TunnelInvertedFlat), {}, {}, rotated(0, paint.TunnelInvertedFlat)},
			segments:  paint.SegmentsAll,
			clearance: 48,
		},
		{ // 1
			sprites: [4][]trackSprite{
				{{26819, xyz(0, 0, 24), box(0, 6, 22, 32, 20, 3)}},
				{{26820, xyz(0, 0, 24), box(0, 6, 22, 32, 20, 3)}},
				{{26821, xyz(0, 0, 24), box(0, 6, 22, 32, 20, 3)}, {26822, xyz(0, 0, 24), box(0, 6, 50, 32, 20, 0)}},
				{{26823, xyz(0, 0, 24), box(0, 6, 22, 32, 20, 3)}, {26824, xyz(0, 0, 24), box(0, 6, 50, 32, 20, 0)}},
			},
			segments:  paint.SegmentsAll,
			clearance: 64,
		},
		{ // 2
			sprites: [4][]trackSprite{
				{{26825, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}},
				{{26826, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}},
				{{26827, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}},
				{{26828, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}},
			},
			support:   metalA(paint.MetalSupportTubes, paint.SupportPlaceCentre, 0, 0),
			tunnels:   [4]tunnelSpec{{}, rightTunnel(0, paint.TunnelSquareFlat), leftTunnel(0, paint.TunnelSquareFlat), {}},
			segments:  paint.SegmentsAll,
			clearance: 32,
		},
	},
}

var flatToDown90QuarterLoopPiece = trackPiece{
	normal: []trackTile{
		{ // 0
			sprites: [4][]trackSprite{
				{{16514, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}},
				{{16515, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}},
				{{16516, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}},
				{{16517, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}},
			},
			support:   metalA(paint.MetalSupportTubes, paint.SupportPlaceCentre, 0, 0),
			tunnels:   [4]tunnelSpec{rotated(0, paint.TunnelSquareFlat), {}, {}, rotated(0, paint.TunnelSquareFlat)},
			segments:  paint.SegmentsAll,
			clearance: 32,
		},
		{ // 1
			sprites: [4][]trackSprite{
				{{16518, xyz(0, 0, 0), box(2, 6, 0, 28, 20, 31)}},
				{{16519, xyz(0, 0, 0), box(2, 6, 0, 28, 20, 31)}},
				{{16520, xyz(0, 0, 0), box(2, 6, 0, 28, 20, 31)}},
				{{16521, xyz(0, 0, 0), box(2, 6, 0, 28, 20, 31)}},
			},
			segments:  paint.SegmentsAll,
			clearance: 48,
		},
		{ // 2
			sprites: [4][]trackSprite{
				{{16522, xyz(0, 0, 0), box(4, 6, 0, 2, 20, 31)}},
				{{16523, xyz(0, 0, 0), box(24, 6, 0, 2, 20, 31)}},
				{{16524, xyz(0, 0, 0), box(24, 6, 0, 2, 20, 31)}},
				{{16525, xyz(0, 0, 0), box(4, 6, 0, 2, 20, 31)}},
			},
			tunnels:   [4]tunnelSpec{vertical(32), vertical(32), vertical(32), vertical(32)},
			segments:  paint.SegmentsAll,
			clearance: 32,
		},
	},
}

var invertedFlatToDown90QuarterLoopPiece = trackPiece{
	normal: []trackTile{
		{ // 0
			sprites: [4][]trackSprite{
				{{16526, xyz(0, 0, 24), box(0, 6, 22, 32, 20, 3)}},
				{{16527, xyz(0, 0, 24), box(0, 6, 22, 32, 20, 3)}},
				{{16528, xyz(0, 0, 24), box(0, 6, 22, 32, 20, 3)}},
				{{16529, xyz(0, 0, 24), box(0, 6, 22, 32, 20, 3)}},
			},
			support:   metalA(paint.MetalSupportTubesInverted, paint.SupportPlaceCentre, 0, 36),
			tunnels:   [4]tunnelSpec{rotated(0, paint.TunnelInvertedFlat), {}, {}, rotated(0, paint.TunnelInvertedFlat)},
			segments:  paint.SegmentsAll,
			clearance: 48,
		},
		{ // 1
			sprites: [4][]trackSprite{
				{{16530, xyz(0, 0, 8), box(2, 6, 8, 28, 20, 31)}},
				{{16531, xyz(0, 0, 8), box(2, 6, 8, 28, 20, 31)}},
				{{16532, xyz(0, 0, 8), box(2, 6, 8, 28, 20, 31)}},
				{{16533, xyz(0, 0, 8), box(2, 6, 8, 28, 20, 31)}},
			},
			segments:  paint.SegmentsAll,
			clearance: 48,
		},
		{ // 2
			sprites: [4][]trackSprite{
				{{16534, xyz(0, 0, 0), box(4, 6, 0, 2, 20, 31)}},
				{{16535, xyz(0, 0, 0), box(24, 6, 0, 2, 20, 31)}},
				{{16536, xyz(0, 0, 0), box(24, 6, 0, 2, 20, 31)}},
				{{16537, xyz(0, 0, 0), box(4, 6, 0, 2, 20, 31)}},
			},
			tunnels:   [4]tunnelSpec{vertical(32), vertical(32), vertical(32), vertical(32)},
			segments:  paint.SegmentsAll,
			clearance: 32,
		},
	},
}
