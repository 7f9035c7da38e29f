package multidim

import "coasterpaint/internal/paint"

// Half-banked helices. Each piece climbs two quarter turns; the second quarter
// starts one tile height above the first.

var leftHalfBankedHelixUpSmallPiece = trackPiece{
	normal: []trackTile{
		{ // 0
			sprites: [4][]trackSprite{
				{{16030, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}, {16031, xyz(0, 0, 0), box(0, 6, 27, 32, 20, 0)}},
				{{16032, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}, {16033, xyz(0, 0, 0), box(0, 6, 27, 32, 20, 0)}},
				{{16034, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}},
				{{16035, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}},
			},
			support:   metalA(paint.MetalSupportTubes, paint.SupportPlaceCentre, 2, 0),
			tunnels:   [4]tunnelSpec{rotated(0, paint.TunnelSquareFlat), {}, {}, rotated(0, paint.TunnelSquareFlat)},
			segments:  paint.SegmentB4 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentCC | paint.SegmentD0 | paint.SegmentD4,
			clearance: 32,
		},
		{ // 1
			segments:  paint.SegmentB4 | paint.SegmentC8 | paint.SegmentCC,
			clearance: 32,
		},
		{ // 2
			sprites: [4][]trackSprite{
				{{16036, xyz(0, 0, 0), box(16, 16, 0, 16, 16, 3)}, {16037, xyz(0, 0, 0), box(16, 16, 27, 16, 16, 0)}},
				{{16038, xyz(0, 0, 0), box(16, 16, 0, 16, 16, 3)}, {16039, xyz(0, 0, 0), box(16, 16, 27, 16, 16, 0)}},
				{{16040, xyz(0, 0, 0), box(16, 16, 0, 16, 16, 3)}},
				{{16041, xyz(0, 0, 0), box(16, 16, 0, 16, 16, 3)}},
			},
			segments:  paint.SegmentB4 | paint.SegmentBC | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentCC | paint.SegmentD4,
			clearance: 32,
		},
		{ // 3
			sprites: [4][]trackSprite{
				{{16042, xyz(0, 0, 0), box(6, 0, 0, 20, 32, 3)}, {16043, xyz(0, 0, 0), box(6, 0, 27, 20, 32, 0)}},
				{{16044, xyz(0, 0, 0), box(6, 0, 0, 20, 32, 3)}, {16045, xyz(0, 0, 0), box(6, 0, 27, 20, 32, 0)}},
				{{16046, xyz(0, 0, 0), box(6, 0, 0, 20, 32, 3)}},
				{{16047, xyz(0, 0, 0), box(6, 0, 0, 20, 32, 3)}},
			},
			support:   metalA(paint.MetalSupportTubes, paint.SupportPlaceCentre, 6, 0),
			tunnels:   [4]tunnelSpec{{}, {}, rightTunnel(8, paint.TunnelSquareFlat), leftTunnel(8, paint.TunnelSquareFlat)},
			segments:  paint.SegmentB8 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentD0 | paint.SegmentD4 | paint.SegmentBC,
			clearance: 40,
		},
		{ // 4
			sprites: [4][]trackSprite{
				{{16048, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}, {16049, xyz(0, 0, 0), box(0, 6, 27, 32, 20, 0)}},
				{{16050, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}, {16051, xyz(0, 0, 0), box(0, 6, 27, 32, 20, 0)}},
				{{16052, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}},
				{{16053, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}},
			},
			support:   metalA(paint.MetalSupportTubes, paint.SupportPlaceCentre, 0, 0),
			tunnels:   [4]tunnelSpec{{}, {}, rightTunnel(0, paint.TunnelSquareFlat), leftTunnel(0, paint.TunnelSquareFlat)},
			segments:  paint.SegmentB4 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentCC | paint.SegmentD0 | paint.SegmentD4,
			clearance: 32,
		},
		{ // 5
			segments:  paint.SegmentB4 | paint.SegmentC8 | paint.SegmentCC,
			clearance: 32,
		},
		{ // 6
			sprites: [4][]trackSprite{
				{{16054, xyz(0, 0, 0), box(16, 16, 0, 16, 16, 3)}, {16055, xyz(0, 0, 0), box(16, 16, 27, 16, 16, 0)}},
				{{16056, xyz(0, 0, 0), box(16, 16, 0, 16, 16, 3)}, {16057, xyz(0, 0, 0), box(16, 16, 27, 16, 16, 0)}},
				{{16058, xyz(0, 0, 0), box(16, 16, 0, 16, 16, 3)}},
				{{16059, xyz(0, 0, 0), box(16, 16, 0, 16, 16, 3)}},
			},
			segments:  paint.SegmentB4 | paint.SegmentBC | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentCC | paint.SegmentD4,
			clearance: 32,
		},
		{ // 7
			sprites: [4][]trackSprite{
				{{16060, xyz(0, 0, 0), box(6, 0, 0, 20, 32, 3)}, {16061, xyz(0, 0, 0), box(6, 0, 27, 20, 32, 0)}},
				{{16062, xyz(0, 0, 0), box(6, 0, 0, 20, 32, 3)}, {16063, xyz(0, 0, 0), box(6, 0, 27, 20, 32, 0)}},
				{{16064, xyz(0, 0, 0), box(6, 0, 0, 20, 32, 3)}},
				{{16065, xyz(0, 0, 0), box(6, 0, 0, 20, 32, 3)}},
			},
			support:   metalA(paint.MetalSupportTubes, paint.SupportPlaceCentre, 6, 0),
			tunnels:   [4]tunnelSpec{{}, rightTunnel(8, paint.TunnelSquareFlat), leftTunnel(8, paint.TunnelSquareFlat), {}},
			segments:  paint.SegmentB8 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentD0 | paint.SegmentD4 | paint.SegmentBC,
			clearance: 40,
		},
	},
	inverted: []trackTile{
		{ // 0
			sprites: [4][]trackSprite{
				{{26409, xyz(0, 0, 24), box(0, 6, 22, 32, 20, 3)}, {26410, xyz(0, 0, 24), box(0, 6, 49, 32, 20, 0)}},
				{{26411, xyz(0, 0, 24), box(0, 6, 22, 32, 20, 3)}, {26412, xyz(0, 0, 24), box(0, 6, 49, 32, 20, 0)}},
				{{26413, xyz(0, 0, 24), box(0, 6, 22, 32, 20, 3)}},
				{{26414, xyz(0, 0, 24), box(0, 6, 22, 32, 20, 3)}},
			},
			support:   metalA(paint.MetalSupportTubesInverted, paint.SupportPlaceCentre, 2, 36),
			tunnels:   [4]tunnelSpec{rotated(0, paint.TunnelInvertedFlat), {}, {}, rotated(0, paint.TunnelInvertedFlat)},
			segments:  paint.SegmentB4 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentCC | paint.SegmentD0 | paint.SegmentD4,
			clearance: 48,
		},
		{ // 1
			segments:  paint.SegmentB4 | paint.SegmentC8 | paint.SegmentCC,
			clearance: 48,
		},
		{ // 2
			sprites: [4][]trackSprite{
				{{26415, xyz(0, 0, 24), box(16, 16, 22, 16, 16, 3)}, {26416, xyz(0, 0, 24), box(16, 16, 49, 16, 16, 0)}},
				{{26417, xyz(0, 0, 24), box(16, 16, 22, 16, 16, 3)}, {26418, xyz(0, 0, 24), box(16, 16, 49, 16, 16, 0)}},
				{{26419, xyz(0, 0, 24), box(16, 16, 22, 16, 16, 3)}},
				{{26420, xyz(0, 0, 24), box(16, 16, 22, 16, 16, 3)}},
			},
			segments:  paint.SegmentB4 | paint.SegmentBC | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentCC | paint.SegmentD4,
			clearance: 48,
		},
		{ // 3
			sprites: [4][]trackSprite{
				{{26421, xyz(0, 0, 24), box(6, 0, 22, 20, 32, 3)}, {26422, xyz(0, 0, 24), box(6, 0, 49, 20, 32, 0)}},
				{{26423, xyz(0, 0, 24), box(6, 0, 22, 20, 32, 3)}, {26424, xyz(0, 0, 24), box(6, 0, 49, 20, 32, 0)}},
				{{26425, xyz(0, 0, 24), box(6, 0, 22, 20, 32, 3)}},
				{{26426, xyz(0, 0, 24), box(6, 0, 22, 20, 32, 3)}},
			},
			support:   metalA(paint.MetalSupportTubesInverted, paint.SupportPlaceCentre, 6, 36),
			tunnels:   [4]tunnelSpec{{}, {}, rightTunnel(8, paint.TunnelInvertedFlat), leftTunnel(8, paint.TunnelInvertedFlat)},
			segments:  paint.SegmentB8 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentD0 | paint.SegmentD4 | paint.SegmentBC,
			clearance: 56,
		},
		{ // 4
			sprites: [4][]trackSprite{
				{{26427, xyz(0, 0, 24), box(0, 6, 22, 32, 20, 3)}, {26428, xyz(0, 0, 24), box(0, 6, 49, 32, 20, 0)}},
				{{26429, xyz(0, 0, 24), box(0, 6, 22, 32, 20, 3)}, {26430, xyz(0, 0, 24), box(0, 6, 49, 32, 20, 0)}},
				{{26431, xyz(0, 0, 24), box(0, 6, 22, 32, 20, 3)}},
				{{26432, xyz(0, 0, 24), box(0, 6, 22, 32, 20, 3)}},
			},
			support:   metalA(paint.MetalSupportTubesInverted, paint.SupportPlaceCentre, 0, 36),
			tunnels:   [4]tunnelSpec{{}, {}, rightTunnel(0, paint.TunnelInvertedFlat), leftTunnel(0, paint.TunnelInvertedFlat)},
			segments:  paint.SegmentB4 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentCC | paint.SegmentD0 | paint.SegmentD4,
			clearance: 48,
		},
		{ // 5
			segments:  paint.SegmentB4 | paint.SegmentC8 | paint.SegmentCC,
			clearance: 48,
		},
		{ // 6
			sprites: [4][]trackSprite{
				{{26433, xyz(0, 0, 24), box(16, 16, 22, 16, 16, 3)}, {26434, xyz(0, 0, 24), box(16, 16, 49, 16, 16, 0)}},
				{{26435, xyz(0, 0, 24), box(16, 16, 22, 16, 16, 3)}, {26436, xyz(0, 0, 24), box(16, 16, 49, 16, 16, 0)}},
				{{26437, xyz(0, 0, 24), box(16, 16, 22, 16, 16, 3)}},
				{{26438, xyz(0, 0, 24), box(16, 16, 22, 16, 16, 3)}},
			},
			segments:  paint.SegmentB4 | paint.SegmentBC | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentCC | paint.SegmentD4,
			clearance: 48,
		},
		{ // 7
			sprites: [4][]trackSprite{
				{{26439, xyz(0, 0, 24), box(6, 0, 22, 20, 32, 3)}, {26440, xyz(0, 0, 24), box(6, 0, 49, 20, 32, 0)}},
				{{26441, xyz(0, 0, 24), box(6, 0, 22, 20, 32, 3)}, {26442, xyz(0, 0, 24), box(6, 0, 49, 20, 32, 0)}},
				{{26443, xyz(0, 0, 24), box(6, 0, 22, 20, 32, 3)}},
				{{26444, xyz(0, 0, 24), box(6, 0, 22, 20, 32, 3)}},
			},
			support:   metalA(paint.MetalSupportTubesInverted, paint.SupportPlaceCentre, 6, 36),
			tunnels:   [4]tunnelSpec{{}, rightTunnel(8, paint.TunnelInvertedFlat), leftTunnel(8, paint.TunnelInvertedFlat), {}},
			segments:  paint.SegmentB8 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentD0 | paint.SegmentD4 | paint.SegmentBC,
			clearance: 56,
		},
	},
}

var rightHalfBankedHelixUpSmallPiece = trackPiece{
	normal: []trackTile{
		{ // 0
			sprites: [4][]trackSprite{
				{{16066, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}},
				{{16067, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}},
				{{16068, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}, {16069, xyz(0, 0, 0), box(0, 6, 27, 32, 20, 0)}},
				{{16070, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}, {16071, xyz(0, 0, 0), box(0, 6, 27, 32, 20, 0)}},
			},
			support:   metalA(paint.MetalSupportTubes, paint.SupportPlaceCentre, 2, 0),
			tunnels:   [4]tunnelSpec{rotated(0, paint.TunnelSquareFlat), {}, {}, rotated(0, paint.TunnelSquareFlat)},
			segments:  paint.SegmentB4 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentCC | paint.SegmentD0 | paint.SegmentD4,
			clearance: 32,
		},
		{ // 1
			segments:  paint.SegmentB4 | paint.SegmentC8 | paint.SegmentCC,
			clearance: 32,
		},
		{ // 2
			sprites: [4][]trackSprite{
				{{16072, xyz(0, 0, 0), box(16, 0, 0, 16, 16, 3)}},
				{{16073, xyz(0, 0, 0), box(16, 0, 0, 16, 16, 3)}},
				{{16074, xyz(0, 0, 0), box(16, 0, 0, 16, 16, 3)}, {16075, xyz(0, 0, 0), box(16, 0, 27, 16, 16, 0)}},
				{{16076, xyz(0, 0, 0), box(16, 0, 0, 16, 16, 3)}, {16077, xyz(0, 0, 0), box(16, 0, 27, 16, 16, 0)}},
			},
			segments:  paint.SegmentB4 | paint.SegmentBC | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentCC | paint.SegmentD4,
			clearance: 32,
		},
		{ // 3
			sprites: [4][]trackSprite{
				{{16078, xyz(0, 0, 0), box(6, 0, 0, 20, 32, 3)}},
				{{16079, xyz(0, 0, 0), box(6, 0, 0, 20, 32, 3)}},
				{{16080, xyz(0, 0, 0), box(6, 0, 0, 20, 32, 3)}, {16081, xyz(0, 0, 0), box(6, 0, 27, 20, 32, 0)}},
				{{16082, xyz(0, 0, 0), box(6, 0, 0, 20, 32, 3)}, {16083, xyz(0, 0, 0), box(6, 0, 27, 20, 32, 0)}},
			},
			support:   metalA(paint.MetalSupportTubes, paint.SupportPlaceCentre, 6, 0),
			tunnels:   [4]tunnelSpec{rightTunnel(8, paint.TunnelSquareFlat), leftTunnel(8, paint.TunnelSquareFlat), {}, {}},
			segments:  paint.SegmentB8 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentD0 | paint.SegmentD4 | paint.SegmentBC,
			clearance: 40,
		},
		{ // 4
			sprites: [4][]trackSprite{
				{{16084, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}},
				{{16085, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}},
				{{16086, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}, {16087, xyz(0, 0, 0), box(0, 6, 27, 32, 20, 0)}},
				{{16088, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}, {16089, xyz(0, 0, 0), box(0, 6, 27, 32, 20, 0)}},
			},
			support:   metalA(paint.MetalSupportTubes, paint.SupportPlaceCentre, 0, 0),
			tunnels:   [4]tunnelSpec{rightTunnel(0, paint.TunnelSquareFlat), leftTunnel(0, paint.TunnelSquareFlat), {}, {}},
			segments:  paint.SegmentB4 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentCC | paint.SegmentD0 | paint.SegmentD4,
			clearance: 32,
		},
		{ // 5
			segments:  paint.SegmentB4 | paint.SegmentC8 | paint.SegmentCC,
			clearance: 32,
		},
		{ // 6
			sprites: [4][]trackSprite{
				{{16090, xyz(0, 0, 0), box(16, 0, 0, 16, 16, 3)}},
				{{16091, xyz(0, 0, 0), box(16, 0, 0, 16, 16, 3)}},
				{{16092, xyz(0, 0, 0), box(16, 0, 0, 16, 16, 3)}, {16093, xyz(0, 0, 0), box(16, 0, 27, 16, 16, 0)}},
				{{16094, xyz(0, 0, 0), box(16, 0, 0, 16, 16, 3)}, {16095, xyz(0, 0, 0), box(16, 0, 27, 16, 16, 0)}},
			},
			segments:  paint.SegmentB4 | paint.SegmentBC | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentCC | paint.SegmentD4,
			clearance: 32,
		},
		{ // 7
			sprites: [4][]trackSprite{
				{{16096, xyz(0, 0, 0), box(6, 0, 0, 20, 32, 3)}},
				{{16097, xyz(0, 0, 0), box(6, 0, 0, 20, 32, 3)}},
				{{16098, xyz(0, 0, 0), box(6, 0, 0, 20, 32, 3)}, {16099, xyz(0, 0, 0), box(6, 0, 27, 20, 32, 0)}},
				{{16100, xyz(0, 0, 0), box(6, 0, 0, 20, 32, 3)}, {16101, xyz(0, 0, 0), box(6, 0, 27, 20, 32, 0)}},
			},
			support:   metalA(paint.MetalSupportTubes, paint.SupportPlaceCentre, 6, 0),
			tunnels:   [4]tunnelSpec{{}, rightTunnel(8, paint.TunnelSquareFlat), leftTunnel(8, paint.TunnelSquareFlat), {}},
			segments:  paint.SegmentB8 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentD0 | paint.SegmentD4 | paint.SegmentBC,
			clearance: 40,
		},
	},
	inverted: []trackTile{
		{ // 0
			sprites: [4][]trackSprite{
				{{26445, xyz(0, 0, 24), box(0, 6, 22, 32, 20, 3)}},
				{{26446, xyz(0, 0, 24), box(0, 6, 22, 32, 20, 3)}},
				{{26447, xyz(0, 0, 24), box(0, 6, 22, 32, 20, 3)}, {26448, xyz(0, 0, 24), box(0, 6, 49, 32, 20, 0)}},
				{{26449, xyz(0, 0, 24), box(0, 6, 22, 32, 20, 3)}, {26450, xyz(0, 0, 24), box(0, 6, 49, 32, 20, 0)}},
			},
			support:   metalA(paint.MetalSupportTubesInverted, paint.SupportPlaceCentre, 2, 36),
			tunnels:   [4]tunnelSpec{rotated(0, paint.TunnelInvertedFlat), {}, {}, rotated(0, paint.TunnelInvertedFlat)},
			segments:  paint.SegmentB4 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentCC | paint.SegmentD0 | paint.SegmentD4,
			clearance: 48,
		},
		{ // 1
			segments:  paint.SegmentB4 | paint.SegmentC8 | paint.SegmentCC,
			clearance: 48,
		},
		{ // 2
			sprites: [4][]trackSprite{
				{{26451, xyz(0, 0, 24), box(16, 0, 22, 16, 16, 3)}},
				{{26452, xyz(0, 0, 24), box(16, 0, 22, 16, 16, 3)}},
				{{26453, xyz(0, 0, 24), box(16, 0, 22, 16, 16, 3)}, {26454, xyz(0, 0, 24), box(16, 0, 49, 16, 16, 0)}},
				{{26455, xyz(0, 0, 24), box(16, 0, 22, 16, 16, 3)}, {26456, xyz(0, 0, 24), box(16, 0, 49, 16, 16, 0)}},
			},
			segments:  paint.SegmentB4 | paint.SegmentBC | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentCC | paint.SegmentD4,
			clearance: 48,
		},
		{ // 3
			sprites: [4][]trackSprite{
				{{26457, xyz(0, 0, 24), box(6, 0, 22, 20, 32, 3)}},
				{{26458, xyz(0, 0, 24), box(6, 0, 22, 20, 32, 3)}},
				{{26459, xyz(0, 0, 24), box(6, 0, 22, 20, 32, 3)}, {26460, xyz(0, 0, 24), box(6, 0, 49, 20, 32, 0)}},
				{{26461, xyz(0, 0, 24), box(6, 0, 22, 20, 32, 3)}, {26462, xyz(0, 0, 24), box(6, 0, 49, 20, 32, 0)}},
			},
			support:   metalA(paint.MetalSupportTubesInverted, paint.SupportPlaceCentre, 6, 36),
			tunnels:   [4]tunnelSpec{rightTunnel(8, paint.TunnelInvertedFlat), leftTunnel(8, paint.TunnelInvertedFlat), {}, {}},
			segments:  paint.SegmentB8 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentD0 | paint.SegmentD4 | paint.SegmentBC,
			clearance: 56,
		},
		{ // 4
			sprites: [4][]trackSprite{
				{{26463, xyz(0, 0, 24), box(0, 6, 22, 32, 20, 3)}},
				{{26464, xyz(0, 0, 24), box(0, 6, 22, 32, 20, 3)}},
				{{26465, xyz(0, 0, 24), box(0, 6, 22, 32, 20, 3)}, {26466, xyz(0, 0, 24), box(0, 6, 49, 32, 20, 0)}},
				{{26467, xyz(0, 0, 24), box(0, 6, 22, 32, 20, 3)}, {26468, xyz(0, 0, 24), box(0, 6, 49, 32, 20, 0)}},
			},
			support:   metalA(paint.MetalSupportTubesInverted, paint.SupportPlaceCentre, 0, 36),
			tunnels:   [4]tunnelSpec{rightTunnel(0, paint.TunnelInvertedFlat), leftTunnel(0, paint.TunnelInvertedFlat), {}, {}},
			segments:  paint.SegmentB4 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentCC | paint.SegmentD0 | paint.SegmentD4,
			clearance: 48,
		},
		{ // 5
			segments:  paint.SegmentB4 | paint.SegmentC8 | paint.SegmentCC,
			clearance: 48,
		},
		{ // 6
			sprites: [4][]trackSprite{
				{{26469, xyz(0, 0, 24), box(16, 0, 22, 16, 16, 3)}},
				{{26470, xyz(0, 0, 24), box(16, 0, 22, 16, 16, 3)}},
				{{26471, xyz(0, 0, 24), box(16, 0, 22, 16, 16, 3)}, {26472, xyz(0, 0, 24), box(16, 0, 49, 16, 16, 0)}},
				{{26473, xyz(0, 0, 24), box(16, 0, 22, 16, 16, 3)}, {26474, xyz(0, 0, 24), box(16, 0, 49, 16, 16, 0)}},
			},
			segments:  paint.SegmentB4 | paint.SegmentBC | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentCC | paint.SegmentD4,
			clearance: 48,
		},
		{ // 7
			sprites: [4][]trackSprite{
				{{26475, xyz(0, 0, 24), box(6, 0, 22, 20, 32, 3)}},
				{{26476, xyz(0, 0, 24), box(6, 0, 22, 20, 32, 3)}},
				{{26477, xyz(0, 0, 24), box(6, 0, 22, 20, 32, 3)}, {26478, xyz(0, 0, 24), box(6, 0, 49, 20, 32, 0)}},
				{{26479, xyz(0, 0, 24), box(6, 0, 22, 20, 32, 3)}, {26480, xyz(0, 0, 24), box(6, 0, 49, 20, 32, 0)}},
			},
			support:   metalA(paint.MetalSupportTubesInverted, paint.SupportPlaceCentre, 6, 36),
			tunnels:   [4]tunnelSpec{{}, rightTunnel(8, paint.TunnelInvertedFlat), leftTunnel(8, paint.TunnelInvertedFlat), {}},
			segments:  paint.SegmentB8 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentD0 | paint.SegmentD4 | paint.SegmentBC,
			clearance: 56,
		},
	},
}

var leftHalfBankedHelixUpLargePiece = trackPiece{
	normal: []trackTile{
		{ // 0
			sprites: [4][]trackSprite{
				{{16102, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}, {16103, xyz(0, 0, 0), box(0, 6, 27, 32, 20, 0)}},
				{{16104, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}, {16105, xyz(0, 0, 0), box(0, 6, 27, 32, 20, 0)}},
				{{16106, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}},
				{{16107, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}},
			},
			support:   metalA(paint.MetalSupportTubes, paint.SupportPlaceCentre, 2, 0),
			tunnels:   [4]tunnelSpec{rotated(0, paint.TunnelSquareFlat), {}, {}, rotated(0, paint.TunnelSquareFlat)},
			segments:  paint.SegmentB4 | paint.SegmentC4 | paint.SegmentCC | paint.SegmentC8 | paint.SegmentD0 | paint.SegmentD4 | paint.SegmentBC,
			clearance: 32,
		},
		{ // 1
			segments:  paint.SegmentB4 | paint.SegmentC8 | paint.SegmentCC,
			clearance: 32,
		},
		{ // 2
			sprites: [4][]trackSprite{
				{{16108, xyz(0, 0, 0), box(0, 16, 0, 32, 16, 3)}, {16109, xyz(0, 0, 0), box(0, 16, 27, 32, 16, 0)}},
				{{16110, xyz(0, 0, 0), box(0, 16, 0, 32, 16, 3)}, {16111, xyz(0, 0, 0), box(0, 16, 27, 32, 16, 0)}},
				{{16112, xyz(0, 0, 0), box(0, 16, 0, 32, 16, 3)}},
				{{16113, xyz(0, 0, 0), box(0, 16, 0, 32, 16, 3)}},
			},
			segments:  paint.SegmentB4 | paint.SegmentBC | paint.SegmentC0 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentCC | paint.SegmentD0 | paint.SegmentD4,
			clearance: 32,
		},
		{ // 3
			sprites: [4][]trackSprite{
				{{16114, xyz(0, 0, 0), box(0, 0, 0, 16, 16, 3)}, {16115, xyz(0, 0, 0), box(0, 0, 27, 16, 16, 0)}},
				{{16116, xyz(0, 0, 0), box(0, 0, 0, 16, 16, 3)}, {16117, xyz(0, 0, 0), box(0, 0, 27, 16, 16, 0)}},
				{{16118, xyz(0, 0, 0), box(0, 0, 0, 16, 16, 3)}},
				{{16119, xyz(0, 0, 0), box(0, 0, 0, 16, 16, 3)}},
			},
			segments:  paint.SegmentB4 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentCC | paint.SegmentD0,
			clearance: 40,
		},
		{ // 4
			segments:  paint.SegmentBC | paint.SegmentC4 | paint.SegmentCC | paint.SegmentD4,
			clearance: 32,
		},
		{ // 5
			sprites: [4][]trackSprite{
				{{16120, xyz(0, 0, 0), box(16, 0, 0, 16, 32, 3)}, {16121, xyz(0, 0, 0), box(16, 0, 27, 16, 32, 0)}},
				{{16122, xyz(0, 0, 0), box(16, 0, 0, 16, 32, 3)}, {16123, xyz(0, 0, 0), box(16, 0, 27, 16, 32, 0)}},
				{{16124, xyz(0, 0, 0), box(16, 0, 0, 16, 32, 3)}},
				{{16125, xyz(0, 0, 0), box(16, 0, 0, 16, 32, 3)}},
			},
			segments:  paint.SegmentB4 | paint.SegmentB8 | paint.SegmentBC | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentCC | paint.SegmentD0 | paint.SegmentD4,
			clearance: 40,
		},
		{ // 6
			sprites: [4][]trackSprite{
				{{16126, xyz(0, 0, 0), box(6, 0, 0, 20, 32, 3)}, {16127, xyz(0, 0, 0), box(6, 0, 27, 20, 32, 0)}},
				{{16128, xyz(0, 0, 0), box(6, 0, 0, 20, 32, 3)}, {16129, xyz(0, 0, 0), box(6, 0, 27, 20, 32, 0)}},
				{{16130, xyz(0, 0, 0), box(6, 0, 0, 20, 32, 3)}},
				{{16131, xyz(0, 0, 0), box(6, 0, 0, 20, 32, 3)}},
			},
			support:   metalA(paint.MetalSupportTubes, paint.SupportPlaceCentre, 6, 0),
			tunnels:   [4]tunnelSpec{{}, {}, rightTunnel(8, paint.TunnelSquareFlat), leftTunnel(8, paint.TunnelSquareFlat)},
			segments:  paint.SegmentB8 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentD0 | paint.SegmentD4 | paint.SegmentC0 | paint.SegmentBC,
			clearance: 40,
		},
		{ // 7
			sprites: [4][]trackSprite{
				{{16132, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}, {16133, xyz(0, 0, 0), box(0, 6, 27, 32, 20, 0)}},
				{{16134, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}, {16135, xyz(0, 0, 0), box(0, 6, 27, 32, 20, 0)}},
				{{16136, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}},
				{{16137, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}},
			},
			support:   metalA(paint.MetalSupportTubes, paint.SupportPlaceCentre, 0, 0),
			tunnels:   [4]tunnelSpec{{}, {}, rightTunnel(0, paint.TunnelSquareFlat), leftTunnel(0, paint.TunnelSquareFlat)},
			segments:  paint.SegmentB4 | paint.SegmentC4 | paint.SegmentCC | paint.SegmentC8 | paint.SegmentD0 | paint.SegmentD4 | paint.SegmentBC,
			clearance: 32,
		},
		{ // 8
			segments:  paint.SegmentB4 | paint.SegmentC8 | paint.SegmentCC,
			clearance: 32,
		},
		{ // 9
			sprites: [4][]trackSprite{
				{{16138, xyz(0, 0, 0), box(0, 16, 0, 32, 16, 3)}, {16139, xyz(0, 0, 0), box(0, 16, 27, 32, 16, 0)}},
				{{16140, xyz(0, 0, 0), box(0, 16, 0, 32, 16, 3)}, {16141, xyz(0, 0, 0), box(0, 16, 27, 32, 16, 0)}},
				{{16142, xyz(0, 0, 0), box(0, 16, 0, 32, 16, 3)}},
				{{16143, xyz(0, 0, 0), box(0, 16, 0, 32, 16, 3)}},
			},
			segments:  paint.SegmentB4 | paint.SegmentBC | paint.SegmentC0 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentCC | paint.SegmentD0 | paint.SegmentD4,
			clearance: 32,
		},
		{ // 10
			sprites: [4][]trackSprite{
				{{16144, xyz(0, 0, 0), box(0, 0, 0, 16, 16, 3)}, {16145, xyz(0, 0, 0), box(0, 0, 27, 16, 16, 0)}},
				{{16146, xyz(0, 0, 0), box(0, 0, 0, 16, 16, 3)}, {16147, xyz(0, 0, 0), box(0, 0, 27, 16, 16, 0)}},
				{{16148, xyz(0, 0, 0), box(0, 0, 0, 16, 16, 3)}},
				{{16149, xyz(0, 0, 0), box(0, 0, 0, 16, 16, 3)}},
			},
			segments:  paint.SegmentB4 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentCC | paint.SegmentD0,
			clearance: 40,
		},
		{ // 11
			segments:  paint.SegmentBC | paint.SegmentC4 | paint.SegmentCC | paint.SegmentD4,
			clearance: 32,
		},
		{ // 12
			sprites: [4][]trackSprite{
				{{16150, xyz(0, 0, 0), box(16, 0, 0, 16, 32, 3)}, {16151, xyz(0, 0, 0), box(16, 0, 27, 16, 32, 0)}},
				{{16152, xyz(0, 0, 0), box(16, 0, 0, 16, 32, 3)}, {16153, xyz(0, 0, 0), box(16, 0, 27, 16, 32, 0)}},
				{{16154, xyz(0, 0, 0), box(16, 0, 0, 16, 32, 3)}},
				{{16155, xyz(0, 0, 0), box(16, 0, 0, 16, 32, 3)}},
			},
			segments:  paint.SegmentB4 | paint.SegmentB8 | paint.SegmentBC | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentCC | paint.SegmentD0 | paint.SegmentD4,
			clearance: 40,
		},
		{ // 13
			sprites: [4][]trackSprite{
				{{16156, xyz(0, 0, 0), box(6, 0, 0, 20, 32, 3)}, {16157, xyz(0, 0, 0), box(6, 0, 27, 20, 32, 0)}},
				{{16158, xyz(0, 0, 0), box(6, 0, 0, 20, 32, 3)}, {16159, xyz(0, 0, 0), box(6, 0, 27, 20, 32, 0)}},
				{{16160, xyz(0, 0, 0), box(6, 0, 0, 20, 32, 3)}},
				{{16161, xyz(0, 0, 0), box(6, 0, 0, 20, 32, 3)}},
			},
			support:   metalA(paint.MetalSupportTubes, paint.SupportPlaceCentre, 6, 0),
			tunnels:   [4]tunnelSpec{{}, rightTunnel(8, paint.TunnelSquareFlat), leftTunnel(8, paint.TunnelSquareFlat), {}},
			segments:  paint.SegmentB8 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentD0 | paint.SegmentD4 | paint.SegmentC0 | paint.SegmentBC,
			clearance: 40,
		},
	},
	inverted: []trackTile{
		{ // 0
			sprites: [4][]trackSprite{
				{{26481, xyz(0, 0, 24), box(0, 6, 22, 32, 20, 3)}, {26482, xyz(0, 0, 24), box(0, 6, 49, 32, 20, 0)}},
				{{26483, xyz(0, 0, 24), box(0, 6, 22, 32, 20, 3)}, {26484, xyz(0, 0, 24), box(0, 6, 49, 32, 20, 0)}},
				{{26485, xyz(0, 0, 24), box(0, 6, 22, 32, 20, 3)}},
				{{26486, xyz(0, 0, 24), box(0, 6, 22, 32, 20, 3)}},
			},
			support:   metalA(paint.MetalSupportTubesInverted, paint.SupportPlaceCentre, 2, 36),
			tunnels:   [4]tunnelSpec{rotated(0, paint.TunnelInvertedFlat), {}, {}, rotated(0, paint.TunnelInvertedFlat)},
			segments:  paint.SegmentB4 | paint.SegmentC4 | paint.SegmentCC | paint.SegmentC8 | paint.SegmentD0 | paint.SegmentD4 | paint.SegmentBC,
			clearance: 48,
		},
		{ // 1
			segments:  paint.SegmentB4 | paint.SegmentC8 | paint.SegmentCC,
			clearance: 48,
		},
		{ // 2
			sprites: [4][]trackSprite{
				{{26487, xyz(0, 0, 24), box(0, 16, 22, 32, 16, 3)}, {26488, xyz(0, 0, 24), box(0, 16, 49, 32, 16, 0)}},
				{{26489, xyz(0, 0, 24), box(0, 16, 22, 32, 16, 3)}, {26490, xyz(0, 0, 24), box(0, 16, 49, 32, 16, 0)}},
				{{26491, xyz(0, 0, 24), box(0, 16, 22, 32, 16, 3)}},
				{{26492, xyz(0, 0, 24), box(0, 16, 22, 32, 16, 3)}},
			},
			segments:  paint.SegmentB4 | paint.SegmentBC | paint.SegmentC0 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentCC | paint.SegmentD0 | paint.SegmentD4,
			clearance: 48,
		},
		{ // 3
			sprites: [4][]trackSprite{
				{{26493, xyz(0, 0, 24), box(0, 0, 22, 16, 16, 3)}, {26494, xyz(0, 0, 24), box(0, 0, 49, 16, 16, 0)}},
				{{26495, xyz(0, 0, 24), box(0, 0, 22, 16, 16, 3)}, {26496, xyz(0, 0, 24), box(0, 0, 49, 16, 16, 0)}},
				{{26497, xyz(0, 0, 24), box(0, 0, 22, 16, 16, 3)}},
				{{26498, xyz(0, 0, 24), box(0, 0, 22, 16, 16, 3)}},
			},
			segments:  paint.SegmentB4 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentCC | paint.SegmentD0,
			clearance: 56,
		},
		{ // 4
			segments:  paint.SegmentBC | paint.SegmentC4 | paint.SegmentCC | paint.SegmentD4,
			clearance: 48,
		},
		{ // 5
			sprites: [4][]trackSprite{
				{{26499, xyz(0, 0, 24), box(16, 0, 22, 16, 32, 3)}, {26500, xyz(0, 0, 24), box(16, 0, 49, 16, 32, 0)}},
				{{26501, xyz(0, 0, 24), box(16, 0, 22, 16, 32, 3)}, {26502, xyz(0, 0, 24), box(16, 0, 49, 16, 32, 0)}},
				{{26503, xyz(0, 0, 24), box(16, 0, 22, 16, 32, 3)}},
				{{26504, xyz(0, 0, 24), box(16, 0, 22, 16, 32, 3)}},
			},
			segments:  paint.SegmentB4 | paint.SegmentB8 | paint.SegmentBC | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentCC | paint.SegmentD0 | paint.SegmentD4,
			clearance: 56,
		},
		{ // 6
			sprites: [4][]trackSprite{
				{{26505, xyz(0, 0, 24), box(6, 0, 22, 20, 32, 3)}, {26506, xyz(0, 0, 24), box(6, 0, 49, 20, 32, 0)}},
				{{26507, xyz(0, 0, 24), box(6, 0, 22, 20, 32, 3)}, {26508, xyz(0, 0, 24), box(6, 0, 49, 20, 32, 0)}},
				{{26509, xyz(0, 0, 24), box(6, 0, 22, 20, 32, 3)}},
				{{26510, xyz(0, 0, 24), box(6, 0, 22, 20, 32, 3)}},
			},
			support:   metalA(paint.MetalSupportTubesInverted, paint.SupportPlaceCentre, 6, 36),
			tunnels:   [4]tunnelSpec{{}, {}, rightTunnel(8, paint.TunnelInvertedFlat), leftTunnel(8, paint.TunnelInvertedFlat)},
			segments:  paint.SegmentB8 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentD0 | paint.SegmentD4 | paint.SegmentC0 | paint.SegmentBC,
			clearance: 56,
		},
		{ // 7
			sprites: [4][]trackSprite{
				{{26511, xyz(0, 0, 24), box(0, 6, 22, 32, 20, 3)}, {26512, xyz(0, 0, 24), box(0, 6, 49, 32, 20, 0)}},
				{{26513, xyz(0, 0, 24), box(0, 6, 22, 32, 20, 3)}, {26514, xyz(0, 0, 24), box(0, 6, 49, 32, 20, 0)}},
				{{26515, xyz(0, 0, 24), box(0, 6, 22, 32, 20, 3)}},
				{{26516, xyz(0, 0, 24), box(0, 6, 22, 32, 20, 3)}},
			},
			support:   metalA(paint.MetalSupportTubesInverted, paint.SupportPlaceCentre, 0, 36),
			tunnels:   [4]tunnelSpec{{}, {}, rightTunnel(0, paint.TunnelInvertedFlat), leftTunnel(0, paint.TunnelInvertedFlat)},
			segments:  paint.SegmentB4 | paint.SegmentC4 | paint.SegmentCC | paint.SegmentC8 | paint.SegmentD0 | paint.SegmentD4 | paint.SegmentBC,
			clearance: 48,
		},
		{ // 8
			segments:  paint.SegmentB4 | paint.SegmentC8 | paint.SegmentCC,
			clearance: 48,
		},
		{ // 9
			sprites: [4][]trackSprite{
				{{26517, xyz(0, 0, 24), box(0, 16, 22, 32, 16, 3)}, {26518, xyz(0, 0, 24), box(0, 16, 49, 32, 16, 0)}},
				{{26519, xyz(0, 0, 24), box(0, 16, 22, 32, 16, 3)}, {26520, xyz(0, 0, 24), box(0, 16, 49, 32, 16, 0)}},
				{{26521, xyz(0, 0, 24), box(0, 16, 22, 32, 16, 3)}},
				{{26522, xyz(0, 0, 24), box(0, 16, 22, 32, 16, 3)}},
			},
			segments:  paint.SegmentB4 | paint.SegmentBC | paint.SegmentC0 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentCC | paint.SegmentD0 | paint.SegmentD4,
			clearance: 48,
		},
		{ // 10
			sprites: [4][]trackSprite{
				{{26523, xyz(0, 0, 24), box(0, 0, 22, 16, 16, 3)}, {26524, xyz(0, 0, 24), box(0, 0, 49, 16, 16, 0)}},
				{{26525, xyz(0, 0, 24), box(0, 0, 22, 16, 16, 3)}, {26526, xyz(0, 0, 24), box(0, 0, 49, 16, 16, 0)}},
				{{26527, xyz(0, 0, 24), box(0, 0, 22, 16, 16, 3)}},
				{{26528, xyz(0, 0, 24), box(0, 0, 22, 16, 16, 3)}},
			},
			segments:  paint.SegmentB4 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentCC | paint.SegmentD0,
			clearance: 56,
		},
		{ // 11
			segments:  paint.SegmentBC | paint.SegmentC4 | paint.SegmentCC | paint.SegmentD4,
			clearance: 48,
		},
		{ // 12
			sprites: [4][]trackSprite{
				{{26529, xyz(0, 0, 24), box(16, 0, 22, 16, 32, 3)}, {26530, xyz(0, 0, 24), box(16, 0, 49, 16, 32, 0)}},
				{{26531, xyz(0, 0, 24), box(16, 0, 22, 16, 32, 3)}, {26532, xyz(0, 0, 24), box(16, 0, 49, 16, 32, 0)}},
				{{26533, xyz(0, 0, 24), box(16, 0, 22, 16, 32, 3)}},
				{{26534, xyz(0, 0, 24), box(16, 0, 22, 16, 32, 3)}},
			},
			segments:  paint.SegmentB4 | paint.SegmentB8 | paint.SegmentBC | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentCC | paint.SegmentD0 | paint.SegmentD4,
			clearance: 56,
		},
		{ // 13
			sprites: [4][]trackSprite{
				{{26535, xyz(0, 0, 24), box(6, 0, 22, 20, 32, 3)}, {26536, xyz(0, 0, 24), box(6, 0, 49, 20, 32, 0)}},
				{{26537, xyz(0, 0, 24), box(6, 0, 22, 20, 32, 3)}, {26538, xyz(0, 0, 24), box(6, 0, 49, 20, 32, 0)}},
				{{26539, xyz(0, 0, 24), box(6, 0, 22, 20, 32, 3)}},
				{{26540, xyz(0, 0, 24), box(6, 0, 22, 20, 32, 3)}},
			},
			support:   metalA(paint.MetalSupportTubesInverted, paint.SupportPlaceCentre, 6, 36),
			tunnels:   [4]tunnelSpec{{}, rightTunnel(8, paint.TunnelInvertedFlat), leftTunnel(8, paint.TunnelInvertedFlat), {}},
			segments:  paint.SegmentB8 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentD0 | paint.SegmentD4 | paint.SegmentC0 | paint.SegmentBC,
			clearance: 56,
		},
	},
}

var rightHalfBankedHelixUpLargePiece = trackPiece{
	normal: []trackTile{
		{ // 0
			sprites: [4][]trackSprite{
				{{16162, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}},
				{{16163, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}},
				{{16164, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}, {16165, xyz(0, 0, 0), box(0, 6, 27, 32, 20, 0)}},
				{{16166, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}, {16167, xyz(0, 0, 0), box(0, 6, 27, 32, 20, 0)}},
			},
			support:   metalA(paint.MetalSupportTubes, paint.SupportPlaceCentre, 2, 0),
			tunnels:   [4]tunnelSpec{rotated(0, paint.TunnelSquareFlat), {}, {}, rotated(0, paint.TunnelSquareFlat)},
			segments:  paint.SegmentB4 | paint.SegmentC4 | paint.SegmentCC | paint.SegmentC8 | paint.SegmentD0 | paint.SegmentD4 | paint.SegmentBC,
			clearance: 32,
		},
		{ // 1
			segments:  paint.SegmentB4 | paint.SegmentC8 | paint.SegmentCC,
			clearance: 32,
		},
		{ // 2
			sprites: [4][]trackSprite{
				{{16168, xyz(0, 0, 0), box(0, 0, 0, 32, 16, 3)}},
				{{16169, xyz(0, 0, 0), box(0, 0, 0, 32, 16, 3)}},
				{{16170, xyz(0, 0, 0), box(0, 0, 0, 32, 16, 3)}, {16171, xyz(0, 0, 0), box(0, 0, 27, 32, 16, 0)}},
				{{16172, xyz(0, 0, 0), box(0, 0, 0, 32, 16, 3)}, {16173, xyz(0, 0, 0), box(0, 0, 27, 32, 16, 0)}},
			},
			segments:  paint.SegmentB4 | paint.SegmentBC | paint.SegmentC0 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentCC | paint.SegmentD0 | paint.SegmentD4,
			clearance: 32,
		},
		{ // 3
			sprites: [4][]trackSprite{
				{{16174, xyz(0, 0, 0), box(16, 16, 0, 16, 16, 3)}},
				{{16175, xyz(0, 0, 0), box(16, 16, 0, 16, 16, 3)}},
				{{16176, xyz(0, 0, 0), box(16, 16, 0, 16, 16, 3)}, {16177, xyz(0, 0, 0), box(16, 16, 27, 16, 16, 0)}},
				{{16178, xyz(0, 0, 0), box(16, 16, 0, 16, 16, 3)}, {16179, xyz(0, 0, 0), box(16, 16, 27, 16, 16, 0)}},
			},
			segments:  paint.SegmentB4 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentCC | paint.SegmentD0,
			clearance: 40,
		},
		{ // 4
			segments:  paint.SegmentBC | paint.SegmentC4 | paint.SegmentCC | paint.SegmentD4,
			clearance: 32,
		},
		{ // 5
			sprites: [4][]trackSprite{
				{{16180, xyz(0, 0, 0), box(0, 0, 0, 16, 32, 3)}},
				{{16181, xyz(0, 0, 0), box(0, 0, 0, 16, 32, 3)}},
				{{16182, xyz(0, 0, 0), box(0, 0, 0, 16, 32, 3)}, {16183, xyz(0, 0, 0), box(0, 0, 27, 16, 32, 0)}},
				{{16184, xyz(0, 0, 0), box(0, 0, 0, 16, 32, 3)}, {16185, xyz(0, 0, 0), box(0, 0, 27, 16, 32, 0)}},
			},
			segments:  paint.SegmentB4 | paint.SegmentB8 | paint.SegmentBC | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentCC | paint.SegmentD0 | paint.SegmentD4,
			clearance: 40,
		},
		{ // 6
			sprites: [4][]trackSprite{
				{{16186, xyz(0, 0, 0), box(6, 0, 0, 20, 32, 3)}},
				{{16187, xyz(0, 0, 0), box(6, 0, 0, 20, 32, 3)}},
				{{16188, xyz(0, 0, 0), box(6, 0, 0, 20, 32, 3)}, {16189, xyz(0, 0, 0), box(6, 0, 27, 20, 32, 0)}},
				{{16190, xyz(0, 0, 0), box(6, 0, 0, 20, 32, 3)}, {16191, xyz(0, 0, 0), box(6, 0, 27, 20, 32, 0)}},
			},
			support:   metalA(paint.MetalSupportTubes, paint.SupportPlaceCentre, 6, 0),
			tunnels:   [4]tunnelSpec{rightTunnel(8, paint.TunnelSquareFlat), leftTunnel(8, paint.TunnelSquareFlat), {}, {}},
			segments:  paint.SegmentB8 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentD0 | paint.SegmentD4 | paint.SegmentC0 | paint.SegmentBC,
			clearance: 40,
		},
		{ // 7
			sprites: [4][]trackSprite{
				{{16192, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}},
				{{16193, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}},
				{{16194, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}, {16195, xyz(0, 0, 0), box(0, 6, 27, 32, 20, 0)}},
				{{16196, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}, {16197, xyz(0, 0, 0), box(0, 6, 27, 32, 20, 0)}},
			},
			support:   metalA(paint.MetalSupportTubes, paint.SupportPlaceCentre, 0, 0),
			tunnels:   [4]tunnelSpec{rightTunnel(0, paint.TunnelSquareFlat), leftTunnel(0, paint.TunnelSquareFlat), {}, {}},
			segments:  paint.SegmentB4 | paint.SegmentC4 | paint.SegmentCC | paint.SegmentC8 | paint.SegmentD0 | paint.SegmentD4 | paint.SegmentBC,
			clearance: 32,
		},
		{ // 8
			segments:  paint.SegmentB4 | paint.SegmentC8 | paint.SegmentCC,
			clearance: 32,
		},
		{ // 9
			sprites: [4][]trackSprite{
				{{16198, xyz(0, 0, 0), box(0, 0, 0, 32, 16, 3)}},
				{{16199, xyz(0, 0, 0), box(0, 0, 0, 32, 16, 3)}},
				{{16200, xyz(0, 0, 0), box(0, 0, 0, 32, 16, 3)}, {16201, xyz(0, 0, 0), box(0, 0, 27, 32, 16, 0)}},
				{{16202, xyz(0, 0, 0), box(0, 0, 0, 32, 16, 3)}, {16203, xyz(0, 0, 0), box(0, 0, 27, 32, 16, 0)}},
			},
			segments:  paint.SegmentB4 | paint.SegmentBC | paint.SegmentC0 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentCC | paint.SegmentD0 | paint.SegmentD4,
			clearance: 32,
		},
		{ // 10
			sprites: [4][]trackSprite{
				{{16204, xyz(0, 0, 0), box(16, 16, 0, 16, 16, 3)}},
				{{16205, xyz(0, 0, 0), box(16, 16, 0, 16, 16, 3)}},
				{{16206, xyz(0, 0, 0), box(16, 16, 0, 16, 16, 3)}, {16207, xyz(0, 0, 0), box(16, 16, 27, 16, 16, 0)}},
				{{16208, xyz(0, 0, 0), box(16, 16, 0, 16, 16, 3)}, {16209, xyz(0, 0, 0), box(16, 16, 27, 16, 16, 0)}},
			},
			segments:  paint.SegmentB4 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentCC | paint.SegmentD0,
			clearance: 40,
		},
		{ // 11
			segments:  paint.SegmentBC | paint.SegmentC4 | paint.SegmentCC | paint.SegmentD4,
			clearance: 32,
		},
		{ // 12
			sprites: [4][]trackSprite{
				{{16210, xyz(0, 0, 0), box(0, 0, 0, 16, 32, 3)}},
				{{16211, xyz(0, 0, 0), box(0, 0, 0, 16, 32, 3)}},
				{{16212, xyz(0, 0, 0), box(0, 0, 0, 16, 32, 3)}, {16213, xyz(0, 0, 0), box(0, 0, 27, 16, 32, 0)}},
				{{16214, xyz(0, 0, 0), box(0, 0, 0, 16, 32, 3)}, {16215, xyz(0, 0, 0), box(0, 0, 27, 16, 32, 0)}},
			},
			segments:  paint.SegmentB4 | paint.SegmentB8 | paint.SegmentBC | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentCC | paint.SegmentD0 | paint.SegmentD4,
			clearance: 40,
		},
		{ // 13
			sprites: [4][]trackSprite{
				{{16216, xyz(0, 0, 0), box(6, 0, 0, 20, 32, 3)}},
				{{16217, xyz(0, 0, 0), box(6, 0, 0, 20, 32, 3)}},
				{{16218, xyz(0, 0, 0), box(6, 0, 0, 20, 32, 3)}, {16219, xyz(0, 0, 0), box(6, 0, 27, 20, 32, 0)}},
				{{16220, xyz(0, 0, 0), box(6, 0, 0, 20, 32, 3)}, {16221, xyz(0, 0, 0), box(6, 0, 27, 20, 32, 0)}},
			},
			support:   metalA(paint.MetalSupportTubes, paint.SupportPlaceCentre, 6, 0),
			tunnels:   [4]tunnelSpec{{}, rightTunnel(8, paint.TunnelSquareFlat), leftTunnel(8, paint.TunnelSquareFlat), {}},
			segments:  paint.SegmentB8 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentD0 | paint.SegmentD4 | paint.SegmentC0 | paint.SegmentBC,
			clearance: 40,
		},
	},
	inverted: []trackTile{
		{ // 0
			sprites: [4][]trackSprite{
				{{26541, xyz(0, 0, 24), box(0, 6, 22, 32, 20, 3)}},
				{{26542, xyz(0, 0, 24), box(0, 6, 22, 32, 20, 3)}},
				{{26543, xyz(0, 0, 24), box(0, 6, 22, 32, 20, 3)}, {26544, xyz(0, 0, 24), box(0, 6, 49, 32, 20, 0)}},
				{{26545, xyz(0, 0, 24), box(0, 6, 22, 32, 20, 3)}, {26546, xyz(0, 0, 24), box(0, 6, 49, 32, 20, 0)}},
			},
			support:   metalA(paint.MetalSupportTubesInverted, paint.SupportPlaceCentre, 2, 36),
			tunnels:   [4]tunnelSpec{rotated(0, paint.TunnelInvertedFlat), {}, {}, rotated(0, paint.TunnelInvertedFlat)},
			segments:  paint.SegmentB4 | paint.SegmentC4 | paint.SegmentCC | paint.SegmentC8 | paint.SegmentD0 | paint.SegmentD4 | paint.SegmentBC,
			clearance: 48,
		},
		{ // 1
			segments:  paint.SegmentB4 | paint.SegmentC8 | paint.SegmentCC,
			clearance: 48,
		},
		{ // 2
			sprites: [4][]trackSprite{
				{{26547, xyz(0, 0, 24), box(0, 0, 22, 32, 16, 3)}},
				{{26548, xyz(0, 0, 24), box(0, 0, 22, 32, 16, 3)}},
				{{26549, xyz(0, 0, 24), box(0, 0, 22, 32, 16, 3)}, {26550, xyz(0, 0, 24), box(0, 0, 49, 32, 16, 0)}},
				{{26551, xyz(0, 0, 24), box(0, 0, 22, 32, 16, 3)}, {26552, xyz(0, 0, 24), box(0, 0, 49, 32, 16, 0)}},
			},
			segments:  paint.SegmentB4 | paint.SegmentBC | paint.SegmentC0 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentCC | paint.SegmentD0 | paint.SegmentD4,
			clearance: 48,
		},
		{ // 3
			sprites: [4][]trackSprite{
				{{26553, xyz(0, 0, 24), box(16, 16, 22, 16, 16, 3)}},
				{{26554, xyz(0, 0, 24), box(16, 16, 22, 16, 16, 3)}},
				{{26555, xyz(0, 0, 24), box(16, 16, 22, 16, 16, 3)}, {26556, xyz(0, 0, 24), box(16, 16, 49, 16, 16, 0)}},
				{{26557, xyz(0, 0, 24), box(16, 16, 22, 16, 16, 3)}, {26558, xyz(0, 0, 24), box(16, 16, 49, 16, 16, 0)}},
			},
			segments:  paint.SegmentB4 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentCC | paint.SegmentD0,
			clearance: 56,
		},
		{ // 4
			segments:  paint.SegmentBC | paint.SegmentC4 | paint.SegmentCC | paint.SegmentD4,
			clearance: 48,
		},
		{ // 5
			sprites: [4][]trackSprite{
				{{26559, xyz(0, 0, 24), box(0, 0, 22, 16, 32, 3)}},
				{{26560, xyz(0, 0, 24), box(0, 0, 22, 16, 32, 3)}},
				{{26561, xyz(0, 0, 24), box(0, 0, 22, 16, 32, 3)}, {26562, xyz(0, 0, 24), box(0, 0, 49, 16, 32, 0)}},
				{{26563, xyz(0, 0, 24), box(0, 0, 22, 16, 32, 3)}, {26564, xyz(0, 0, 24), box(0, 0, 49, 16, 32, 0)}},
			},
			segments:  paint.SegmentB4 | paint.SegmentB8 | paint.SegmentBC | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentCC | paint.SegmentD0 | paint.SegmentD4,
			clearance: 56,
		},
		{ // 6
			sprites: [4][]trackSprite{
				{{26565, xyz(0, 0, 24), box(6, 0, 22, 20, 32, 3)}},
				{{26566, xyz(0, 0, 24), box(6, 0, 22, 20, 32, 3)}},
				{{26567, xyz(0, 0, 24), box(6, 0, 22, 20, 32, 3)}, {26568, xyz(0, 0, 24), box(6, 0, 49, 20, 32, 0)}},
				{{26569, xyz(0, 0, 24), box(6, 0, 22, 20, 32, 3)}, {26570, xyz(0, 0, 24), box(6, 0, 49, 20, 32, 0)}},
			},
			support:   metalA(paint.MetalSupportTubesInverted, paint.SupportPlaceCentre, 6, 36),
			tunnels:   [4]tunnelSpec{rightTunnel(8, paint.TunnelInvertedFlat), leftTunnel(8, paint.TunnelInvertedFlat), {}, {}},
			segments:  paint.SegmentB8 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentD0 | paint.SegmentD4 | paint.SegmentC0 | paint.SegmentBC,
			clearance: 56,
		},
		{ // 7
			sprites: [4][]trackSprite{
				{{26571, xyz(0, 0, 24), box(0, 6, 22, 32, 20, 3)}},
				{{26572, xyz(0, 0, 24), box(0, 6, 22, 32, 20, 3)}},
				{{26573, xyz(0, 0, 24), box(0, 6, 22, 32, 20, 3)}, {26574, xyz(0, 0, 24), box(0, 6, 49, 32, 20, 0)}},
				{{26575, xyz(0, 0, 24), box(0, 6, 22, 32, 20, 3)}, {26576, xyz(0, 0, 24), box(0, 6, 49, 32, 20, 0)}},
			},
			support:   metalA(paint.MetalSupportTubesInverted, paint.SupportPlaceCentre, 0, 36),
			tunnels:   [4]tunnelSpec{rightTunnel(0, paint.TunnelInvertedFlat), leftTunnel(0, paint.TunnelInvertedFlat), {}, {}},
			segments:  paint.SegmentB4 | paint.SegmentC4 | paint.SegmentCC | paint.SegmentC8 | paint.SegmentD0 | paint.SegmentD4 | paint.SegmentBC,
			clearance: 48,
		},
		{ // 8
			segments:  paint.SegmentB4 | paint.SegmentC8 | paint.SegmentCC,
			clearance: 48,
		},
		{ // 9
			sprites: [4][]trackSprite{
				{{26577, xyz(0, 0, 24), box(0, 0, 22, 32, 16, 3)}},
				{{26578, xyz(0, 0, 24), box(0, 0, 22, 32, 16, 3)}},
				{{26579, xyz(0, 0, 24), box(0, 0, 22, 32, 16, 3)}, {26580, xyz(0, 0, 24), box(0, 0, 49, 32, 16, 0)}},
				{{26581, xyz(0, 0, 24), box(0, 0, 22, 32, 16, 3)}, {26582, xyz(0, 0, 24), box(0, 0, 49, 32, 16, 0)}},
			},
			segments:  paint.SegmentB4 | paint.SegmentBC | paint.SegmentC0 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentCC | paint.SegmentD0 | paint.SegmentD4,
			clearance: 48,
		},
		{ // 10
			sprites: [4][]trackSprite{
				{{26583, xyz(0, 0, 24), box(16, 16, 22, 16, 16, 3)}},
				{{26584, xyz(0, 0, 24), box(16, 16, 22, 16, 16, 3)}},
				{{26585, xyz(0, 0, 24), box(16, 16, 22, 16, 16, 3)}, {26586, xyz(0, 0, 24), box(16, 16, 49, 16, 16, 0)}},
				{{26587, xyz(0, 0, 24), box(16, 16, 22, 16, 16, 3)}, {26588, xyz(0, 0, 24), box(16, 16, 49, 16, 16, 0)}},
			},
			segments:  paint.SegmentB4 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentCC | paint.SegmentD0,
			clearance: 56,
		},
		{ // 11
			segments:  paint.SegmentBC | paint.SegmentC4 | paint.SegmentCC | paint.SegmentD4,
			clearance: 48,
		},
		{ // 12
			sprites: [4][]trackSprite{
				{{26589, xyz(0, 0, 24), box(0, 0, 22, 16, 32, 3)}},
				{{26590, xyz(0, 0, 24), box(0, 0, 22, 16, 32, 3)}},
				{{26591, xyz(0, 0, 24), box(0, 0, 22, 16, 32, 3)}, {26592, xyz(0, 0, 24), box(0, 0, 49, 16, 32, 0)}},
				{{26593, xyz(0, 0, 24), box(0, 0, 22, 16, 32, 3)}, {26594, xyz(0, 0, 24), box(0, 0, 49, 16, 32, 0)}},
			},
			segments:  paint.SegmentB4 | paint.SegmentB8 | paint.SegmentBC | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentCC | paint.SegmentD0 | paint.SegmentD4,
			clearance: 56,
		},
		{ // 13
			sprites: [4][]trackSprite{
				{{26595, xyz(0, 0, 24), box(6, 0, 22, 20, 32, 3)}},
				{{26596, xyz(0, 0, 24), box(6, 0, 22, 20, 32, 3)}},
				{{26597, xyz(0, 0, 24), box(6, 0, 22, 20, 32, 3)}, {26598, xyz(0, 0, 24), box(6, 0, 49, 20, 32, 0)}},
				{{26599, xyz(0, 0, 24), box(6, 0, 22, 20, 32, 3)}, {26600, xyz(0, 0, 24), box(6, 0, 49, 20, 32, 0)}},
			},
			support:   metalA(paint.MetalSupportTubesInverted, paint.SupportPlaceCentre, 6, 36),
			tunnels:   [4]tunnelSpec{{}, rightTunnel(8, paint.TunnelInvertedFlat), leftTunnel(8, paint.TunnelInvertedFlat), {}},
			segments:  paint.SegmentB8 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentD0 | paint.SegmentD4 | paint.SegmentC0 | paint.SegmentBC,
			clearance: 56,
		},
	},
}
