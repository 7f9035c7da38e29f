package multidim

import "coasterpaint/internal/paint"

// Eighth turns from orthogonal to diagonal track.

var leftEighthToDiagPiece = trackPiece{
	normal: []trackTile{
		{ // 0
			sprites: [4][]trackSprite{
				{{16222, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}},
				{{16223, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}},
				{{16224, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}},
				{{16225, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}},
			},
			support:   metalA(paint.MetalSupportTubes, paint.SupportPlaceCentre, 0, 0),
			tunnels:   [4]tunnelSpec{rotated(0, paint.TunnelSquareFlat), {}, {}, rotated(0, paint.TunnelSquareFlat)},
			segments:  paint.SegmentB4 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentCC | paint.SegmentD0 | paint.SegmentD4 | paint.SegmentBC,
			clearance: 32,
		},
		{ // 1
			sprites: [4][]trackSprite{
				{{16226, xyz(0, 0, 0), box(0, 16, 0, 32, 16, 3)}},
				{{16227, xyz(0, 0, 0), box(0, 16, 0, 32, 16, 3)}},
				{{16228, xyz(0, 0, 0), box(0, 16, 0, 32, 16, 3)}},
				{{16229, xyz(0, 0, 0), box(0, 16, 0, 32, 16, 3)}},
			},
			segments:  paint.SegmentB4 | paint.SegmentBC | paint.SegmentC4 | paint.SegmentCC | paint.SegmentD4,
			clearance: 32,
		},
		{ // 2
			sprites: [4][]trackSprite{
				{{16230, xyz(0, 0, 0), box(0, 0, 0, 16, 16, 3)}},
				{{16231, xyz(0, 0, 0), box(0, 0, 0, 16, 16, 3)}},
				{{16232, xyz(0, 0, 0), box(0, 0, 0, 16, 16, 3)}},
				{{16233, xyz(0, 0, 0), box(0, 0, 0, 16, 16, 3)}},
			},
			segments:  paint.SegmentB8 | paint.SegmentB4 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentD0,
			clearance: 32,
		},
		{ // 3
			segments:  paint.SegmentB4 | paint.SegmentCC | paint.SegmentBC,
			clearance: 32,
		},
		{ // 4
			sprites: [4][]trackSprite{
				{{16234, xyz(0, 0, 0), box(16, 16, 0, 16, 16, 3)}},
				{{16235, xyz(0, 0, 0), box(16, 16, 0, 16, 16, 3)}},
				{{16236, xyz(0, 0, 0), box(16, 16, 0, 16, 16, 3)}},
				{{16237, xyz(0, 0, 0), box(16, 16, 0, 16, 16, 3)}},
			},
			support:   metalAPlaced(paint.MetalSupportTubes, [4]int8{1, 0, 2, 3}, 0, 0),
			segments:  paint.SegmentB8 | paint.SegmentC0 | paint.SegmentC4 | paint.SegmentD0 | paint.SegmentD4,
			clearance: 32,
		},
	},
	inverted: []trackTile{
		{ // 0
			sprites: [4][]trackSprite{
				{{26601, xyz(0, 0, 24), box(0, 6, 22, 32, 20, 3)}},
				{{26602, xyz(0, 0, 24), box(0, 6, 22, 32, 20, 3)}},
				{{26603, xyz(0, 0, 24), box(0, 6, 22, 32, 20, 3)}},
				{{26604, xyz(0, 0, 24), box(0, 6, 22, 32, 20, 3)}},
			},
			support:   metalA(paint.MetalSupportTubesInverted, paint.SupportPlaceCentre, 0, 36),
			tunnels:   [4]tunnelSpec{rotated(0, paint.TunnelInvertedFlat), {}, {}, rotated(0, paint.TunnelInvertedFlat)},
			segments:  paint.SegmentB4 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentCC | paint.SegmentD0 | paint.SegmentD4 | paint.SegmentBC,
			clearance: 48,
		},
		{ // 1
			sprites: [4][]trackSprite{
				{{26605, xyz(0, 0, 24), box(0, 16, 22, 32, 16, 3)}},
				{{26606, xyz(0, 0, 24), box(0, 16, 22, 32, 16, 3)}},
				{{26607, xyz(0, 0, 24), box(0, 16, 22, 32, 16, 3)}},
				{{26608, xyz(0, 0, 24), box(0, 16, 22, 32, 16, 3)}},
			},
			segments:  paint.SegmentB4 | paint.SegmentBC | paint.SegmentC4 | paint.SegmentCC | paint.SegmentD4,
			clearance: 48,
		},
		{ // 2
			sprites: [4][]trackSprite{
				{{26609, xyz(0, 0, 24), box(0, 0, 22, 16, 16, 3)}},
				{{26610, xyz(0, 0, 24), box(0, 0, 22, 16, 16, 3)}},
				{{26611, xyz(0, 0, 24), box(0, 0, 22, 16, 16, 3)}},
				{{26612, xyz(0, 0, 24), box(0, 0, 22, 16, 16, 3)}},
			},
			segments:  paint.SegmentB8 | paint.SegmentB4 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentD0,
			clearance: 48,
		},
		{ // 3
			segments:  paint.SegmentB4 | paint.SegmentCC | paint.SegmentBC,
			clearance: 48,
		},
		{ // 4
			sprites: [4][]trackSprite{
				{{26613, xyz(0, 0, 24), box(16, 16, 22, 16, 16, 3)}},
				{{26614, xyz(0, 0, 24), box(16, 16, 22, 16, 16, 3)}},
				{{26615, xyz(0, 0, 24), box(16, 16, 22, 16, 16, 3)}},
				{{26616, xyz(0, 0, 24), box(16, 16, 22, 16, 16, 3)}},
			},
			support:   metalAPlaced(paint.MetalSupportTubesInverted, [4]int8{1, 0, 2, 3}, 0, 36),
			segments:  paint.SegmentB8 | paint.SegmentC0 | paint.SegmentC4 | paint.SegmentD0 | paint.SegmentD4,
			clearance: 48,
		},
	},
}

var rightEighthToDiagPiece = trackPiece{
	normal: []trackTile{
		{ // 0
			sprites: [4][]trackSprite{
				{{16238, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}},
				{{16239, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}},
				{{16240, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}},
				{{16241, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}},
			},
			support:   metalA(paint.MetalSupportTubes, paint.SupportPlaceCentre, 0, 0),
			tunnels:   [4]tunnelSpec{rotated(0, paint.TunnelSquareFlat), {}, {}, rotated(0, paint.TunnelSquareFlat)},
			segments:  paint.SegmentB4 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentCC | paint.SegmentD0 | paint.SegmentD4 | paint.SegmentBC,
			clearance: 32,
		},
		{ // 1
			sprites: [4][]trackSprite{
				{{16242, xyz(0, 0, 0), box(0, 0, 0, 32, 16, 3)}},
				{{16243, xyz(0, 0, 0), box(0, 0, 0, 32, 16, 3)}},
				{{16244, xyz(0, 0, 0), box(0, 0, 0, 32, 16, 3)}},
				{{16245, xyz(0, 0, 0), box(0, 0, 0, 32, 16, 3)}},
			},
			segments:  paint.SegmentB4 | paint.SegmentBC | paint.SegmentC4 | paint.SegmentCC | paint.SegmentD4,
			clearance: 32,
		},
		{ // 2
			sprites: [4][]trackSprite{
				{{16246, xyz(0, 0, 0), box(0, 16, 0, 16, 16, 3)}},
				{{16247, xyz(0, 0, 0), box(0, 16, 0, 16, 16, 3)}},
				{{16248, xyz(0, 0, 0), box(0, 16, 0, 16, 16, 3)}},
				{{16249, xyz(0, 0, 0), box(0, 16, 0, 16, 16, 3)}},
			},
			segments:  paint.SegmentB8 | paint.SegmentB4 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentD0,
			clearance: 32,
		},
		{ // 3
			segments:  paint.SegmentB4 | paint.SegmentCC | paint.SegmentBC,
			clearance: 32,
		},
		{ // 4
			sprites: [4][]trackSprite{
				{{16250, xyz(0, 0, 0), box(16, 0, 0, 16, 16, 3)}},
				{{16251, xyz(0, 0, 0), box(16, 0, 0, 16, 16, 3)}},
				{{16252, xyz(0, 0, 0), box(16, 0, 0, 16, 16, 3)}},
				{{16253, xyz(0, 0, 0), box(16, 0, 0, 16, 16, 3)}},
			},
			support:   metalAPlaced(paint.MetalSupportTubes, [4]int8{3, 1, 0, 2}, 0, 0),
			segments:  paint.SegmentB8 | paint.SegmentC0 | paint.SegmentC4 | paint.SegmentD0 | paint.SegmentD4,
			clearance: 32,
		},
	},
	inverted: []trackTile{
		{ // 0
			sprites: [4][]trackSprite{
				{{26617, xyz(0, 0, 24), box(0, 6, 22, 32, 20, 3)}},
				{{26618, xyz(0, 0, 24), box(0, 6, 22, 32, 20, 3)}},
				{{26619, xyz(0, 0, 24), box(0, 6, 22, 32, 20, 3)}},
				{{26620, xyz(0, 0, 24), box(0, 6, 22, 32, 20, 3)}},
			},
			support:   metalA(paint.MetalSupportTubesInverted, paint.SupportPlaceCentre, 0, 36),
			tunnels:   [4]tunnelSpec{rotated(0, paint.TunnelInvertedFlat), {}, {}, rotated(0, paint.TunnelInvertedFlat)},
			segments:  paint.SegmentB4 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentCC | paint.SegmentD0 | paint.SegmentD4 | paint.SegmentBC,
			clearance: 48,
		},
		{ // 1
			sprites: [4][]trackSprite{
				{{26621, xyz(0, 0, 24), box(0, 0, 22, 32, 16, 3)}},
				{{26622, xyz(0, 0, 24), box(0, 0, 22, 32, 16, 3)}},
				{{26623, xyz(0, 0, 24), box(0, 0, 22, 32, 16, 3)}},
				{{26624, xyz(0, 0, 24), box(0, 0, 22, 32, 16, 3)}},
			},
			segments:  paint.SegmentB4 | paint.SegmentBC | paint.SegmentC4 | paint.SegmentCC | paint.SegmentD4,
			clearance: 48,
		},
		{ // 2
			sprites: [4][]trackSprite{
				{{26625, xyz(0, 0, 24), box(0, 16, 22, 16, 16, 3)}},
				{{26626, xyz(0, 0, 24), box(0, 16, 22, 16, 16, 3)}},
				{{26627, xyz(0, 0, 24), box(0, 16, 22, 16, 16, 3)}},
				{{26628, xyz(0, 0, 24), box(0, 16, 22, 16, 16, 3)}},
			},
			segments:  paint.SegmentB8 | paint.SegmentB4 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentD0,
			clearance: 48,
		},
		{ // 3
			segments:  paint.SegmentB4 | paint.SegmentCC | paint.SegmentBC,
			clearance: 48,
		},
		{ // 4
			sprites: [4][]trackSprite{
				{{26629, xyz(0, 0, 24), box(16, 0, 22, 16, 16, 3)}},
				{{26630, xyz(0, 0, 24), box(16, 0, 22, 16, 16, 3)}},
				{{26631, xyz(0, 0, 24), box(16, 0, 22, 16, 16, 3)}},
				{{26632, xyz(0, 0, 24), box(16, 0, 22, 16, 16, 3)}},
			},
			support:   metalAPlaced(paint.MetalSupportTubesInverted, [4]int8{3, 1, 0, 2}, 0, 36),
			segments:  paint.SegmentB8 | paint.SegmentC0 | paint.SegmentC4 | paint.SegmentD0 | paint.SegmentD4,
			clearance: 48,
		},
	},
}

var leftEighthBankToDiagPiece = trackPiece{
	normal: []trackTile{
		{ // 0
			sprites: [4][]trackSprite{
				{{16254, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}, {16255, xyz(0, 0, 0), box(0, 6, 27, 32, 20, 0)}},
				{{16256, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}, {16257, xyz(0, 0, 0), box(0, 6, 27, 32, 20, 0)}},
				{{16258, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}},
				{{16259, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}},
			},
			support:   metalA(paint.MetalSupportTubes, paint.SupportPlaceCentre, 0, 0),
			tunnels:   [4]tunnelSpec{rotated(0, paint.TunnelSquareFlat), {}, {}, rotated(0, paint.TunnelSquareFlat)},
			segments:  paint.SegmentB4 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentCC | paint.SegmentD0 | paint.SegmentD4 | paint.SegmentBC,
			clearance: 32,
		},
		{ // 1
			sprites: [4][]trackSprite{
				{{16260, xyz(0, 0, 0), box(0, 16, 0, 32, 16, 3)}, {16261, xyz(0, 0, 0), box(0, 16, 27, 32, 16, 0)}},
				{{16262, xyz(0, 0, 0), box(0, 16, 0, 32, 16, 3)}, {16263, xyz(0, 0, 0), box(0, 16, 27, 32, 16, 0)}},
				{{16264, xyz(0, 0, 0), box(0, 16, 0, 32, 16, 3)}},
				{{16265, xyz(0, 0, 0), box(0, 16, 0, 32, 16, 3)}},
			},
			segments:  paint.SegmentB4 | paint.SegmentBC | paint.SegmentC4 | paint.SegmentCC | paint.SegmentD4,
			clearance: 32,
		},
		{ // 2
			sprites: [4][]trackSprite{
				{{16266, xyz(0, 0, 0), box(0, 0, 0, 16, 16, 3)}, {16267, xyz(0, 0, 0), box(0, 0, 27, 16, 16, 0)}},
				{{16268, xyz(0, 0, 0), box(0, 0, 0, 16, 16, 3)}, {16269, xyz(0, 0, 0), box(0, 0, 27, 16, 16, 0)}},
				{{16270, xyz(0, 0, 0), box(0, 0, 0, 16, 16, 3)}},
				{{16271, xyz(0, 0, 0), box(0, 0, 0, 16, 16, 3)}},
			},
			segments:  paint.SegmentB8 | paint.SegmentB4 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentD0,
			clearance: 32,
		},
		{ // 3
			segments:  paint.SegmentB4 | paint.SegmentCC | paint.SegmentBC,
			clearance: 32,
		},
		{ // 4
			sprites: [4][]trackSprite{
				{{16272, xyz(0, 0, 0), box(16, 16, 0, 16, 16, 3)}, {16273, xyz(0, 0, 0), box(16, 16, 27, 16, 16, 0)}},
				{{16274, xyz(0, 0, 0), box(16, 16, 0, 16, 16, 3)}, {16275, xyz(0, 0, 0), box(16, 16, 27, 16, 16, 0)}},
				{{16276, xyz(0, 0, 0), box(16, 16, 0, 16, 16, 3)}},
				{{16277, xyz(0, 0, 0), box(16, 16, 0, 16, 16, 3)}},
			},
			support:   metalAPlaced(paint.MetalSupportTubes, [4]int8{1, 0, 2, 3}, 0, 0),
			segments:  paint.SegmentB8 | paint.SegmentC0 | paint.SegmentC4 | paint.SegmentD0 | paint.SegmentD4,
			clearance: 32,
		},
	},
	inverted: []trackTile{
		{ // 0
			sprites: [4][]trackSprite{
				{{26633, xyz(0, 0, 24), box(0, 6, 22, 32, 20, 3)}, {26634, xyz(0, 0, 24), box(0, 6, 49, 32, 20, 0)}},
				{{26635, xyz(0, 0, 24), box(0, 6, 22, 32, 20, 3)}, {26636, xyz(0, 0, 24), box(0, 6, 49, 32, 20, 0)}},
				{{26637, xyz(0, 0, 24), box(0, 6, 22, 32, 20, 3)}},
				{{26638, xyz(0, 0, 24), box(0, 6, 22, 32, 20, 3)}},
			},
			support:   metalA(paint.MetalSupportTubesInverted, paint.SupportPlaceCentre, 0, 36),
			tunnels:   [4]tunnelSpec{rotated(0, paint.TunnelInvertedFlat), {}, {}, rotated(0, paint.TunnelInvertedFlat)},
			segments:  paint.SegmentB4 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentCC | paint.SegmentD0 | paint.SegmentD4 | paint.SegmentBC,
			clearance: 48,
		},
		{ // 1
			sprites: [4][]trackSprite{
				{{26639, xyz(0, 0, 24), box(0, 16, 22, 32, 16, 3)}, {26640, xyz(0, 0, 24), box(0, 16, 49, 32, 16, 0)}},
				{{26641, xyz(0, 0, 24), box(0, 16, 22, 32, 16, 3)}, {26642, xyz(0, 0, 24), box(0, 16, 49, 32, 16, 0)}},
				{{26643, xyz(0, 0, 24), box(0, 16, 22, 32, 16, 3)}},
				{{26644, xyz(0, 0, 24), box(0, 16, 22, 32, 16, 3)}},
			},
			segments:  paint.SegmentB4 | paint.SegmentBC | paint.SegmentC4 | paint.SegmentCC | paint.SegmentD4,
			clearance: 48,
		},
		{ // 2
			sprites: [4][]trackSprite{
				{{26645, xyz(0, 0, 24), box(0, 0, 22, 16, 16, 3)}, {26646, xyz(0, 0, 24), box(0, 0, 49, 16, 16, 0)}},
				{{26647, xyz(0, 0, 24), box(0, 0, 22, 16, 16, 3)}, {26648, xyz(0, 0, 24), box(0, 0, 49, 16, 16, 0)}},
				{{26649, xyz(0, 0, 24), box(0, 0, 22, 16, 16, 3)}},
				{{26650, xyz(0, 0, 24), box(0, 0, 22, 16, 16, 3)}},
			},
			segments:  paint.SegmentB8 | paint.SegmentB4 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentD0,
			clearance: 48,
		},
		{ // 3
			segments:  paint.SegmentB4 | paint.SegmentCC | paint.SegmentBC,
			clearance: 48,
		},
		{ // 4
			sprites: [4][]trackSprite{
				{{26651, xyz(0, 0, 24), box(16, 16, 22, 16, 16, 3)}, {26652, xyz(0, 0, 24), box(16, 16, 49, 16, 16, 0)}},
				{{26653, xyz(0, 0, 24), box(16, 16, 22, 16, 16, 3)}, {26654, xyz(0, 0, 24), box(16, 16, 49, 16, 16, 0)}},
				{{26655, xyz(0, 0, 24), box(16, 16, 22, 16, 16, 3)}},
				{{26656, xyz(0, 0, 24), box(16, 16, 22, 16, 16, 3)}},
			},
			support:   metalAPlaced(paint.MetalSupportTubesInverted, [4]int8{1, 0, 2, 3}, 0, 36),
			segments:  paint.SegmentB8 | paint.SegmentC0 | paint.SegmentC4 | paint.SegmentD0 | paint.SegmentD4,
			clearance: 48,
		},
	},
}

var rightEighthBankToDiagPiece = trackPiece{
	normal: []trackTile{
		{ // 0
			sprites: [4][]trackSprite{
				{{16278, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}, {16279, xyz(0, 0, 0), box(0, 6, 27, 32, 20, 0)}},
				{{16280, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}, {16281, xyz(0, 0, 0), box(0, 6, 27, 32, 20, 0)}},
				{{16282, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}},
				{{16283, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}},
			},
			support:   metalA(paint.MetalSupportTubes, paint.SupportPlaceCentre, 0, 0),
			tunnels:   [4]tunnelSpec{rotated(0, paint.TunnelSquareFlat), {}, {}, rotated(0, paint.TunnelSquareFlat)},
			segments:  paint.SegmentB4 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentCC | paint.SegmentD0 | paint.SegmentD4 | paint.SegmentBC,
			clearance: 32,
		},
		{ // 1
			sprites: [4][]trackSprite{
				{{16284, xyz(0, 0, 0), box(0, 0, 0, 32, 16, 3)}, {16285, xyz(0, 0, 0), box(0, 0, 27, 32, 16, 0)}},
				{{16286, xyz(0, 0, 0), box(0, 0, 0, 32, 16, 3)}, {16287, xyz(0, 0, 0), box(0, 0, 27, 32, 16, 0)}},
				{{16288, xyz(0, 0, 0), box(0, 0, 0, 32, 16, 3)}},
				{{16289, xyz(0, 0, 0), box(0, 0, 0, 32, 16, 3)}},
			},
			segments:  paint.SegmentB4 | paint.SegmentBC | paint.SegmentC4 | paint.SegmentCC | paint.SegmentD4,
			clearance: 32,
		},
		{ // 2
			sprites: [4][]trackSprite{
				{{16290, xyz(0, 0, 0), box(0, 16, 0, 16, 16, 3)}, {16291, xyz(0, 0, 0), box(0, 16, 27, 16, 16, 0)}},
				{{16292, xyz(0, 0, 0), box(0, 16, 0, 16, 16, 3)}, {16293, xyz(0, 0, 0), box(0, 16, 27, 16, 16, 0)}},
				{{16294, xyz(0, 0, 0), box(0, 16, 0, 16, 16, 3)}},
				{{16295, xyz(0, 0, 0), box(0, 16, 0, 16, 16, 3)}},
			},
			segments:  paint.SegmentB8 | paint.SegmentB4 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentD0,
			clearance: 32,
		},
		{ // 3
			segments:  paint.SegmentB4 | paint.SegmentCC | paint.SegmentBC,
			clearance: 32,
		},
		{ // 4
			sprites: [4][]trackSprite{
				{{16296, xyz(0, 0, 0), box(16, 0, 0, 16, 16, 3)}, {16297, xyz(0, 0, 0), box(16, 0, 27, 16, 16, 0)}},
				{{16298, xyz(0, 0, 0), box(16, 0, 0, 16, 16, 3)}, {16299, xyz(0, 0, 0), box(16, 0, 27, 16, 16, 0)}},
				{{16300, xyz(0, 0, 0), box(16, 0, 0, 16, 16, 3)}},
				{{16301, xyz(0, 0, 0), box(16, 0, 0, 16, 16, 3)}},
			},
			support:   metalAPlaced(paint.MetalSupportTubes, [4]int8{3, 1, 0, 2}, 0, 0),
			segments:  paint.SegmentB8 | paint.SegmentC0 | paint.SegmentC4 | paint.SegmentD0 | paint.SegmentD4,
			clearance: 32,
		},
	},
	inverted: []trackTile{
		{ // 0
			sprites: [4][]trackSprite{
				{{26657, xyz(0, 0, 24), box(0, 6, 22, 32, 20, 3)}, {26658, xyz(0, 0, 24), box(0, 6, 49, 32, 20, 0)}},
				{{26659, xyz(0, 0, 24), box(0, 6, 22, 32, 20, 3)}, {26660, xyz(0, 0, 24), box(0, 6, 49, 32, 20, 0)}},
				{{26661, xyz(0, 0, 24), box(0, 6, 22, 32, 20, 3)}},
				{{26662, xyz(0, 0, 24), box(0, 6, 22, 32, 20, 3)}},
			},
			support:   metalA(paint.MetalSupportTubesInverted, paint.SupportPlaceCentre, 0, 36),
			tunnels:   [4]tunnelSpec{rotated(0, paint.TunnelInvertedFlat), {}, {}, rotated(0, paint.TunnelInvertedFlat)},
			segments:  paint.SegmentB4 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentCC | paint.SegmentD0 | paint.SegmentD4 | paint.SegmentBC,
			clearance: 48,
		},
		{ // 1
			sprites: [4][]trackSprite{
				{{26663, xyz(0, 0, 24), box(0, 0, 22, 32, 16, 3)}, {26664, xyz(0, 0, 24), box(0, 0, 49, 32, 16, 0)}},
				{{26665, xyz(0, 0, 24), box(0, 0, 22, 32, 16, 3)}, {26666, xyz(0, 0, 24), box(0, 0, 49, 32, 16, 0)}},
				{{26667, xyz(0, 0, 24), box(0, 0, 22, 32, 16, 3)}},
				{{26668, xyz(0, 0, 24), box(0, 0, 22, 32, 16, 3)}},
			},
			segments:  paint.SegmentB4 | paint.SegmentBC | paint.SegmentC4 | paint.SegmentCC | paint.SegmentD4,
			clearance: 48,
		},
		{ // 2
			sprites: [4][]trackSprite{
				{{26669, xyz(0, 0, 24), box(0, 16, 22, 16, 16, 3)}, {26670, xyz(0, 0, 24), box(0, 16, 49, 16, 16, 0)}},
				{{26671, xyz(0, 0, 24), box(0, 16, 22, 16, 16, 3)}, {26672, xyz(0, 0, 24), box(0, 16, 49, 16, 16, 0)}},
				{{26673, xyz(0, 0, 24), box(0, 16, 22, 16, 16, 3)}},
				{{26674, xyz(0, 0, 24), box(0, 16, 22, 16, 16, 3)}},
			},
			segments:  paint.SegmentB8 | paint.SegmentB4 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentD0,
			clearance: 48,
		},
		{ // 3
			segments:  paint.SegmentB4 | paint.SegmentCC | paint.SegmentBC,
			clearance: 48,
		},
		{ // 4
			sprites: [4][]trackSprite{
				{{26675, xyz(0, 0, 24), box(16, 0, 22, 16, 16, 3)}, {26676, xyz(0, 0, 24), box(16, 0, 49, 16, 16, 0)}},
				{{26677, xyz(0, 0, 24), box(16, 0, 22, 16, 16, 3)}, {26678, xyz(0, 0, 24), box(16, 0, 49, 16, 16, 0)}},
				{{26679, xyz(0, 0, 24), box(16, 0, 22, 16, 16, 3)}},
				{{26680, xyz(0, 0, 24), box(16, 0, 22, 16, 16, 3)}},
			},
			support:   metalAPlaced(paint.MetalSupportTubesInverted, [4]int8{3, 1, 0, 2}, 0, 36),
			segments:  paint.SegmentB8 | paint.SegmentC0 | paint.SegmentC4 | paint.SegmentD0 | paint.SegmentD4,
			clearance: 48,
		},
	},
}
