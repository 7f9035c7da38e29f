package multidim

import "coasterpaint/internal/paint"

// Quarter turns and S-bends.

var leftQuarterTurn5Piece = trackPiece{
	normal: []trackTile{
		{ // 0
			sprites: [4][]trackSprite{
				{{15918, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}},
				{{15919, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}},
				{{15920, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}},
				{{15921, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}},
			},
			support:   metalA(paint.MetalSupportTubes, paint.SupportPlaceCentre, 0, 0),
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
				{{15922, xyz(0, 0, 0), box(0, 16, 0, 32, 16, 3)}},
				{{15923, xyz(0, 0, 0), box(0, 16, 0, 32, 16, 3)}},
				{{15924, xyz(0, 0, 0), box(0, 16, 0, 32, 16, 3)}},
				{{15925, xyz(0, 0, 0), box(0, 16, 0, 32, 16, 3)}},
			},
			segments:  paint.SegmentB4 | paint.SegmentBC | paint.SegmentC0 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentCC | paint.SegmentD0 | paint.SegmentD4,
			clearance: 32,
		},
		{ // 3
			sprites: [4][]trackSprite{
				{{15926, xyz(0, 0, 0), box(0, 0, 0, 16, 16, 3)}},
				{{15927, xyz(0, 0, 0), box(0, 0, 0, 16, 16, 3)}},
				{{15928, xyz(0, 0, 0), box(0, 0, 0, 16, 16, 3)}},
				{{15929, xyz(0, 0, 0), box(0, 0, 0, 16, 16, 3)}},
			},
			segments:  paint.SegmentB4 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentCC | paint.SegmentD0,
			clearance: 32,
		},
		{ // 4
			segments:  paint.SegmentBC | paint.SegmentC4 | paint.SegmentCC | paint.SegmentD4,
			clearance: 32,
		},
		{ // 5
			sprites: [4][]trackSprite{
				{{15930, xyz(0, 0, 0), box(16, 0, 0, 16, 32, 3)}},
				{{15931, xyz(0, 0, 0), box(16, 0, 0, 16, 32, 3)}},
				{{15932, xyz(0, 0, 0), box(16, 0, 0, 16, 32, 3)}},
				{{15933, xyz(0, 0, 0), box(16, 0, 0, 16, 32, 3)}},
			},
			segments:  paint.SegmentB4 | paint.SegmentB8 | paint.SegmentBC | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentCC | paint.SegmentD0 | paint.SegmentD4,
			clearance: 32,
		},
		{ // 6
			sprites: [4][]trackSprite{
				{{15934, xyz(0, 0, 0), box(6, 0, 0, 20, 32, 3)}},
				{{15935, xyz(0, 0, 0), box(6, 0, 0, 20, 32, 3)}},
				{{15936, xyz(0, 0, 0), box(6, 0, 0, 20, 32, 3)}},
				{{15937, xyz(0, 0, 0), box(6, 0, 0, 20, 32, 3)}},
			},
			support:   metalA(paint.MetalSupportTubes, paint.SupportPlaceCentre, 0, 0),
			tunnels:   [4]tunnelSpec{{}, {}, rightTunnel(0, paint.TunnelSquareFlat), leftTunnel(0, paint.TunnelSquareFlat)},
			segments:  paint.SegmentB8 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentD0 | paint.SegmentD4 | paint.SegmentC0 | paint.SegmentBC,
			clearance: 32,
		},
	},
	inverted: []trackTile{
		{ // 0
			sprites: [4][]trackSprite{
				{{26297, xyz(0, 0, 24), box(0, 6, 22, 32, 20, 3)}},
				{{26298, xyz(0, 0, 24), box(0, 6, 22, 32, 20, 3)}},
				{{26299, xyz(0, 0, 24), box(0, 6, 22, 32, 20, 3)}},
				{{26300, xyz(0, 0, 24), box(0, 6, 22, 32, 20, 3)}},
			},
			support:   metalA(paint.MetalSupportTubesInverted, paint.SupportPlaceCentre, 0, 36),
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
				{{26301, xyz(0, 0, 24), box(0, 16, 22, 32, 16, 3)}},
				{{26302, xyz(0, 0, 24), box(0, 16, 22, 32, 16, 3)}},
				{{26303, xyz(0, 0, 24), box(0, 16, 22, 32, 16, 3)}},
				{{26304, xyz(0, 0, 24), box(0, 16, 22, 32, 16, 3)}},
			},
			segments:  paint.SegmentB4 | paint.SegmentBC | paint.SegmentC0 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentCC | paint.SegmentD0 | paint.SegmentD4,
			clearance: 48,
		},
		{ // 3
			sprites: [4][]trackSprite{
				{{26305, xyz(0, 0, 24), box(0, 0, 22, 16, 16, 3)}},
				{{26306, xyz(0, 0, 24), box(0, 0, 22, 16, 16, 3)}},
				{{26307, xyz(0, 0, 24), box(0, 0, 22, 16, 16, 3)}},
				{{26308, xyz(0, 0, 24), box(0, 0, 22, 16, 16, 3)}},
			},
			segments:  paint.SegmentB4 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentCC | paint.SegmentD0,
			clearance: 48,
		},
		{ // 4
			segments:  paint.SegmentBC | paint.SegmentC4 | paint.SegmentCC | paint.SegmentD4,
			clearance: 48,
		},
		{ // 5
			sprites: [4][]trackSprite{
				{{26309, xyz(0, 0, 24), box(16, 0, 22, 16, 32, 3)}},
				{{26310, xyz(0, 0, 24), box(16, 0, 22, 16, 32, 3)}},
				{{26311, xyz(0, 0, 24), box(16, 0, 22, 16, 32, 3)}},
				{{26312, xyz(0, 0, 24), box(16, 0, 22, 16, 32, 3)}},
			},
			segments:  paint.SegmentB4 | paint.SegmentB8 | paint.SegmentBC | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentCC | paint.SegmentD0 | paint.SegmentD4,
			clearance: 48,
		},
		{ // 6
			sprites: [4][]trackSprite{
				{{26313, xyz(0, 0, 24), box(6, 0, 22, 20, 32, 3)}},
				{{26314, xyz(0, 0, 24), box(6, 0, 22, 20, 32, 3)}},
				{{26315, xyz(0, 0, 24), box(6, 0, 22, 20, 32, 3)}},
				{{26316, xyz(0, 0, 24), box(6, 0, 22, 20, 32, 3)}},
			},
			support:   metalA(paint.MetalSupportTubesInverted, paint.SupportPlaceCentre, 0, 36),
			tunnels:   [4]tunnelSpec{{}, {}, rightTunnel(0, paint.TunnelInvertedFlat), leftTunnel(0, paint.TunnelInvertedFlat)},
			segments:  paint.SegmentB8 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentD0 | paint.SegmentD4 | paint.SegmentC0 | paint.SegmentBC,
			clearance: 48,
		},
	},
}

var bankedLeftQuarterTurn5Piece = trackPiece{
	normal: []trackTile{
		{ // 0
			sprites: [4][]trackSprite{
				{{15938, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}, {15939, xyz(0, 0, 0), box(0, 6, 27, 32, 20, 0)}},
				{{15940, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}, {15941, xyz(0, 0, 0), box(0, 6, 27, 32, 20, 0)}},
				{{15942, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}},
				{{15943, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}},
			},
			support:   metalA(paint.MetalSupportTubes, paint.SupportPlaceCentre, 0, 0),
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
				{{15944, xyz(0, 0, 0), box(0, 16, 0, 32, 16, 3)}, {15945, xyz(0, 0, 0), box(0, 16, 27, 32, 16, 0)}},
				{{15946, xyz(0, 0, 0), box(0, 16, 0, 32, 16, 3)}, {15947, xyz(0, 0, 0), box(0, 16, 27, 32, 16, 0)}},
				{{15948, xyz(0, 0, 0), box(0, 16, 0, 32, 16, 3)}},
				{{15949, xyz(0, 0, 0), box(0, 16, 0, 32, 16, 3)}},
			},
			segments:  paint.SegmentB4 | paint.SegmentBC | paint.SegmentC0 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentCC | paint.SegmentD0 | paint.SegmentD4,
			clearance: 32,
		},
		{ // 3
			sprites: [4][]trackSprite{
				{{15950, xyz(0, 0, 0), box(0, 0, 0, 16, 16, 3)}, {15951, xyz(0, 0, 0), box(0, 0, 27, 16, 16, 0)}},
				{{15952, xyz(0, 0, 0), box(0, 0, 0, 16, 16, 3)}, {15953, xyz(0, 0, 0), box(0, 0, 27, 16, 16, 0)}},
				{{15954, xyz(0, 0, 0), box(0, 0, 0, 16, 16, 3)}},
				{{15955, xyz(0, 0, 0), box(0, 0, 0, 16, 16, 3)}},
			},
			segments:  paint.SegmentB4 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentCC | paint.SegmentD0,
			clearance: 32,
		},
		{ // 4
			segments:  paint.SegmentBC | paint.SegmentC4 | paint.SegmentCC | paint.SegmentD4,
			clearance: 32,
		},
		{ // 5
			sprites: [4][]trackSprite{
				{{15956, xyz(0, 0, 0), box(16, 0, 0, 16, 32, 3)}, {15957, xyz(0, 0, 0), box(16, 0, 27, 16, 32, 0)}},
				{{15958, xyz(0, 0, 0), box(16, 0, 0, 16, 32, 3)}, {15959, xyz(0, 0, 0), box(16, 0, 27, 16, 32, 0)}},
				{{15960, xyz(0, 0, 0), box(16, 0, 0, 16, 32, 3)}},
				{{15961, xyz(0, 0, 0), box(16, 0, 0, 16, 32, 3)}},
			},
			segments:  paint.SegmentB4 | paint.SegmentB8 | paint.SegmentBC | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentCC | paint.SegmentD0 | paint.SegmentD4,
			clearance: 32,
		},
		{ // 6
			sprites: [4][]trackSprite{
				{{15962, xyz(0, 0, 0), box(6, 0, 0, 20, 32, 3)}, {15963, xyz(0, 0, 0), box(6, 0, 27, 20, 32, 0)}},
				{{15964, xyz(0, 0, 0), box(6, 0, 0, 20, 32, 3)}, {15965, xyz(0, 0, 0), box(6, 0, 27, 20, 32, 0)}},
				{{15966, xyz(0, 0, 0), box(6, 0, 0, 20, 32, 3)}},
				{{15967, xyz(0, 0, 0), box(6, 0, 0, 20, 32, 3)}},
			},
			support:   metalA(paint.MetalSupportTubes, paint.SupportPlaceCentre, 0, 0),
			tunnels:   [4]tunnelSpec{{}, {}, rightTunnel(0, paint.TunnelSquareFlat), leftTunnel(0, paint.TunnelSquareFlat)},
			segments:  paint.SegmentB8 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentD0 | paint.SegmentD4 | paint.SegmentC0 | paint.SegmentBC,
			clearance: 32,
		},
	},
	inverted: []trackTile{
		{ // 0
			sprites: [4][]trackSprite{
				{{26317, xyz(0, 0, 24), box(0, 6, 22, 32, 20, 3)}, {26318, xyz(0, 0, 24), box(0, 6, 49, 32, 20, 0)}},
				{{26319, xyz(0, 0, 24), box(0, 6, 22, 32, 20, 3)}, {26320, xyz(0, 0, 24), box(0, 6, 49, 32, 20, 0)}},
				{{26321, xyz(0, 0, 24), box(0, 6, 22, 32, 20, 3)}},
				{{26322, xyz(0, 0, 24), box(0, 6, 22, 32, 20, 3)}},
			},
			support:   metalA(paint.MetalSupportTubesInverted, paint.SupportPlaceCentre, 0, 36),
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
				{{26323, xyz(0, 0, 24), box(0, 16, 22, 32, 16, 3)}, {26324, xyz(0, 0, 24), box(0, 16, 49, 32, 16, 0)}},
				{{26325, xyz(0, 0, 24), box(0, 16, 22, 32, 16, 3)}, {26326, xyz(0, 0, 24), box(0, 16, 49, 32, 16, 0)}},
				{{26327, xyz(0, 0, 24), box(0, 16, 22, 32, 16, 3)}},
				{{26328, xyz(0, 0, 24), box(0, 16, 22, 32, 16, 3)}},
			},
			segments:  paint.SegmentB4 | paint.SegmentBC | paint.SegmentC0 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentCC | paint.SegmentD0 | paint.SegmentD4,
			clearance: 48,
		},
		{ // 3
			sprites: [4][]trackSprite{
				{{26329, xyz(0, 0, 24), box(0, 0, 22, 16, 16, 3)}, {26330, xyz(0, 0, 24), box(0, 0, 49, 16, 16, 0)}},
				{{26331, xyz(0, 0, 24), box(0, 0, 22, 16, 16, 3)}, {26332, xyz(0, 0, 24), box(0, 0, 49, 16, 16, 0)}},
				{{26333, xyz(0, 0, 24), box(0, 0, 22, 16, 16, 3)}},
				{{26334, xyz(0, 0, 24), box(0, 0, 22, 16, 16, 3)}},
			},
			segments:  paint.SegmentB4 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentCC | paint.SegmentD0,
			clearance: 48,
		},
		{ // 4
			segments:  paint.SegmentBC | paint.SegmentC4 | paint.SegmentCC | paint.SegmentD4,
			clearance: 48,
		},
		{ // 5
			sprites: [4][]trackSprite{
				{{26335, xyz(0, 0, 24), box(16, 0, 22, 16, 32, 3)}, {26336, xyz(0, 0, 24), box(16, 0, 49, 16, 32, 0)}},
				{{26337, xyz(0, 0, 24), box(16, 0, 22, 16, 32, 3)}, {26338, xyz(0, 0, 24), box(16, 0, 49, 16, 32, 0)}},
				{{26339, xyz(0, 0, 24), box(16, 0, 22, 16, 32, 3)}},
				{{26340, xyz(0, 0, 24), box(16, 0, 22, 16, 32, 3)}},
			},
			segments:  paint.SegmentB4 | paint.SegmentB8 | paint.SegmentBC | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentCC | paint.SegmentD0 | paint.SegmentD4,
			clearance: 48,
		},
		{ // 6
			sprites: [4][]trackSprite{
				{{26341, xyz(0, 0, 24), box(6, 0, 22, 20, 32, 3)}, {26342, xyz(0, 0, 24), box(6, 0, 49, 20, 32, 0)}},
				{{26343, xyz(0, 0, 24), box(6, 0, 22, 20, 32, 3)}, {26344, xyz(0, 0, 24), box(6, 0, 49, 20, 32, 0)}},
				{{26345, xyz(0, 0, 24), box(6, 0, 22, 20, 32, 3)}},
				{{26346, xyz(0, 0, 24), box(6, 0, 22, 20, 32, 3)}},
			},
			support:   metalA(paint.MetalSupportTubesInverted, paint.SupportPlaceCentre, 0, 36),
			tunnels:   [4]tunnelSpec{{}, {}, rightTunnel(0, paint.TunnelInvertedFlat), leftTunnel(0, paint.TunnelInvertedFlat)},
			segments:  paint.SegmentB8 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentD0 | paint.SegmentD4 | paint.SegmentC0 | paint.SegmentBC,
			clearance: 48,
		},
	},
}

var sBendLeftPiece = trackPiece{
	normal: []trackTile{
		{ // 0
			sprites: [4][]trackSprite{
				{{15968, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}},
				{{15969, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}},
				{{15970, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}},
				{{15971, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}},
			},
			support:   metalA(paint.MetalSupportTubes, paint.SupportPlaceCentre, 0, 0),
			tunnels:   [4]tunnelSpec{rotated(0, paint.TunnelSquareFlat), {}, {}, rotated(0, paint.TunnelSquareFlat)},
			segments:  paint.SegmentB4 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentCC | paint.SegmentD0 | paint.SegmentD4 | paint.SegmentBC,
			clearance: 32,
		},
		{ // 1
			sprites: [4][]trackSprite{
				{{15972, xyz(0, 0, 0), box(0, 0, 0, 32, 26, 3)}},
				{{15973, xyz(0, 0, 0), box(0, 0, 0, 32, 26, 3)}},
				{{15974, xyz(0, 0, 0), box(0, 0, 0, 32, 26, 3)}},
				{{15975, xyz(0, 0, 0), box(0, 0, 0, 32, 26, 3)}},
			},
			support:   metalAPlaced(paint.MetalSupportTubes, [4]int8{5, 6, 5, 6}, 0, 0),
			segments:  paint.SegmentB4 | paint.SegmentBC | paint.SegmentC4 | paint.SegmentCC | paint.SegmentD4,
			clearance: 32,
		},
		{ // 2
			sprites: [4][]trackSprite{
				{{15976, xyz(0, 0, 0), box(0, 6, 0, 32, 26, 3)}},
				{{15977, xyz(0, 0, 0), box(0, 6, 0, 32, 26, 3)}},
				{{15978, xyz(0, 0, 0), box(0, 6, 0, 32, 26, 3)}},
				{{15979, xyz(0, 0, 0), box(0, 6, 0, 32, 26, 3)}},
			},
			support:   metalAPlaced(paint.MetalSupportTubes, [4]int8{8, 7, 8, 7}, 0, 0),
			segments:  paint.SegmentC0 | paint.SegmentC4 | paint.SegmentD0 | paint.SegmentD4 | paint.SegmentB8,
			clearance: 32,
		},
		{ // 3
			sprites: [4][]trackSprite{
				{{15980, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}},
				{{15981, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}},
				{{15982, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}},
				{{15983, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}},
			},
			support:   metalA(paint.MetalSupportTubes, paint.SupportPlaceCentre, 0, 0),
			tunnels:   [4]tunnelSpec{{}, rotated(0, paint.TunnelSquareFlat), rotated(0, paint.TunnelSquareFlat), {}},
			segments:  paint.SegmentB4 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentCC | paint.SegmentD0 | paint.SegmentD4 | paint.SegmentBC,
			clearance: 32,
		},
	},
	inverted: []trackTile{
		{ // 0
			sprites: [4][]trackSprite{
				{{26347, xyz(0, 0, 24), box(0, 6, 22, 32, 20, 3)}},
				{{26348, xyz(0, 0, 24), box(0, 6, 22, 32, 20, 3)}},
				{{26349, xyz(0, 0, 24), box(0, 6, 22, 32, 20, 3)}},
				{{26350, xyz(0, 0, 24), box(0, 6, 22, 32, 20, 3)}},
			},
			support:   metalA(paint.MetalSupportTubesInverted, paint.SupportPlaceCentre, 0, 36),
			tunnels:   [4]tunnelSpec{rotated(0, paint.TunnelInvertedFlat), {}, {}, rotated(0, paint.TunnelInvertedFlat)},
			segments:  paint.SegmentB4 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentCC | paint.SegmentD0 | paint.SegmentD4 | paint.SegmentBC,
			clearance: 48,
		},
		{ // 1
			sprites: [4][]trackSprite{
				{{26351, xyz(0, 0, 24), box(0, 0, 22, 32, 26, 3)}},
				{{26352, xyz(0, 0, 24), box(0, 0, 22, 32, 26, 3)}},
				{{26353, xyz(0, 0, 24), box(0, 0, 22, 32, 26, 3)}},
				{{26354, xyz(0, 0, 24), box(0, 0, 22, 32, 26, 3)}},
			},
			support:   metalAPlaced(paint.MetalSupportTubesInverted, [4]int8{5, 6, 5, 6}, 0, 36),
			segments:  paint.SegmentB4 | paint.SegmentBC | paint.SegmentC4 | paint.SegmentCC | paint.SegmentD4,
			clearance: 48,
		},
		{ // 2
			sprites: [4][]trackSprite{
				{{26355, xyz(0, 0, 24), box(0, 6, 22, 32, 26, 3)}},
				{{26356, xyz(0, 0, 24), box(0, 6, 22, 32, 26, 3)}},
				{{26357, xyz(0, 0, 24), box(0, 6, 22, 32, 26, 3)}},
				{{26358, xyz(0, 0, 24), box(0, 6, 22, 32, 26, 3)}},
			},
			support:   metalAPlaced(paint.MetalSupportTubesInverted, [4]int8{8, 7, 8, 7}, 0, 36),
			segments:  paint.SegmentC0 | paint.SegmentC4 | paint.SegmentD0 | paint.SegmentD4 | paint.SegmentB8,
			clearance: 48,
		},
		{ // 3
			sprites: [4][]trackSprite{
				{{26359, xyz(0, 0, 24), box(0, 6, 22, 32, 20, 3)}},
				{{26360, xyz(0, 0, 24), box(0, 6, 22, 32, 20, 3)}},
				{{26361, xyz(0, 0, 24), box(0, 6, 22, 32, 20, 3)}},
				{{26362, xyz(0, 0, 24), box(0, 6, 22, 32, 20, 3)}},
			},
			support:   metalA(paint.MetalSupportTubesInverted, paint.SupportPlaceCentre, 0, 36),
			tunnels:   [4]tunnelSpec{{}, rotated(0, paint.TunnelInvertedFlat), rotated(0, paint.TunnelInvertedFlat), {}},
			segments:  paint.SegmentB4 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentCC | paint.SegmentD0 | paint.SegmentD4 | paint.SegmentBC,
			clearance: 48,
		},
	},
}

var sBendRightPiece = trackPiece{
	normal: []trackTile{
		{ // 0
			sprites: [4][]trackSprite{
				{{15984, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}},
				{{15985, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}},
				{{15986, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}},
				{{15987, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}},
			},
			support:   metalA(paint.MetalSupportTubes, paint.SupportPlaceCentre, 0, 0),
			tunnels:   [4]tunnelSpec{rotated(0, paint.TunnelSquareFlat), {}, {}, rotated(0, paint.TunnelSquareFlat)},
			segments:  paint.SegmentB4 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentCC | paint.SegmentD0 | paint.SegmentD4 | paint.SegmentBC,
			clearance: 32,
		},
		{ // 1
			sprites: [4][]trackSprite{
				{{15988, xyz(0, 0, 0), box(0, 6, 0, 32, 26, 3)}},
				{{15989, xyz(0, 0, 0), box(0, 6, 0, 32, 26, 3)}},
				{{15990, xyz(0, 0, 0), box(0, 6, 0, 32, 26, 3)}},
				{{15991, xyz(0, 0, 0), box(0, 6, 0, 32, 26, 3)}},
			},
			support:   metalAPlaced(paint.MetalSupportTubes, [4]int8{6, 5, 6, 5}, 0, 0),
			segments:  paint.SegmentB4 | paint.SegmentBC | paint.SegmentC4 | paint.SegmentCC | paint.SegmentD4,
			clearance: 32,
		},
		{ // 2
			sprites: [4][]trackSprite{
				{{15992, xyz(0, 0, 0), box(0, 0, 0, 32, 26, 3)}},
				{{15993, xyz(0, 0, 0), box(0, 0, 0, 32, 26, 3)}},
				{{15994, xyz(0, 0, 0), box(0, 0, 0, 32, 26, 3)}},
				{{15995, xyz(0, 0, 0), box(0, 0, 0, 32, 26, 3)}},
			},
			support:   metalAPlaced(paint.MetalSupportTubes, [4]int8{7, 8, 7, 8}, 0, 0),
			segments:  paint.SegmentC0 | paint.SegmentC4 | paint.SegmentD0 | paint.SegmentD4 | paint.SegmentB8,
			clearance: 32,
		},
		{ // 3
			sprites: [4][]trackSprite{
				{{15996, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}},
				{{15997, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}},
				{{15998, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}},
				{{15999, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}},
			},
			support:   metalA(paint.MetalSupportTubes, paint.SupportPlaceCentre, 0, 0),
			tunnels:   [4]tunnelSpec{{}, rotated(0, paint.TunnelSquareFlat), rotated(0, paint.TunnelSquareFlat), {}},
			segments:  paint.SegmentB4 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentCC | paint.SegmentD0 | paint.SegmentD4 | paint.SegmentBC,
			clearance: 32,
		},
	},
	inverted: []trackTile{
		{ // 0
			sprites: [4][]trackSprite{
				{{26363, xyz(0, 0, 24), box(0, 6, 22, 32, 20, 3)}},
				{{26364, xyz(0, 0, 24), box(0, 6, 22, 32, 20, 3)}},
				{{26365, xyz(0, 0, 24), box(0, 6, 22, 32, 20, 3)}},
				{{26366, xyz(0, 0, 24), box(0, 6, 22, 32, 20, 3)}},
			},
			support:   metalA(paint.MetalSupportTubesInverted, paint.SupportPlaceCentre, 0, 36),
			tunnels:   [4]tunnelSpec{rotated(0, paint.TunnelInvertedFlat), {}, {}, rotated(0, paint.TunnelInvertedFlat)},
			segments:  paint.SegmentB4 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentCC | paint.SegmentD0 | paint.SegmentD4 | paint.SegmentBC,
			clearance: 48,
		},
		{ // 1
			sprites: [4][]trackSprite{
				{{26367, xyz(0, 0, 24), box(0, 6, 22, 32, 26, 3)}},
				{{26368, xyz(0, 0, 24), box(0, 6, 22, 32, 26, 3)}},
				{{26369, xyz(0, 0, 24), box(0, 6, 22, 32, 26, 3)}},
				{{26370, xyz(0, 0, 24), box(0, 6, 22, 32, 26, 3)}},
			},
			support:   metalAPlaced(paint.MetalSupportTubesInverted, [4]int8{6, 5, 6, 5}, 0, 36),
			segments:  paint.SegmentB4 | paint.SegmentBC | paint.SegmentC4 | paint.SegmentCC | paint.SegmentD4,
			clearance: 48,
		},
		{ // 2
			sprites: [4][]trackSprite{
				{{26371, xyz(0, 0, 24), box(0, 0, 22, 32, 26, 3)}},
				{{26372, xyz(0, 0, 24), box(0, 0, 22, 32, 26, 3)}},
				{{26373, xyz(0, 0, 24), box(0, 0, 22, 32, 26, 3)}},
				{{26374, xyz(0, 0, 24), box(0, 0, 22, 32, 26, 3)}},
			},
			support:   metalAPlaced(paint.MetalSupportTubesInverted, [4]int8{7, 8, 7, 8}, 0, 36),
			segments:  paint.SegmentC0 | paint.SegmentC4 | paint.SegmentD0 | paint.SegmentD4 | paint.SegmentB8,
			clearance: 48,
		},
		{ // 3
			sprites: [4][]trackSprite{
				{{26375, xyz(0, 0, 24), box(0, 6, 22, 32, 20, 3)}},
				{{26376, xyz(0, 0, 24), box(0, 6, 22, 32, 20, 3)}},
				{{26377, xyz(0, 0, 24), box(0, 6, 22, 32, 20, 3)}},
				{{26378, xyz(0, 0, 24), box(0, 6, 22, 32, 20, 3)}},
			},
			support:   metalA(paint.MetalSupportTubesInverted, paint.SupportPlaceCentre, 0, 36),
			tunnels:   [4]tunnelSpec{{}, rotated(0, paint.TunnelInvertedFlat), rotated(0, paint.TunnelInvertedFlat), {}},
			segments:  paint.SegmentB4 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentCC | paint.SegmentD0 | paint.SegmentD4 | paint.SegmentBC,
			clearance: 48,
		},
	},
}

var leftQuarterTurn3Piece = trackPiece{
	normal: []trackTile{
		{ // 0
			sprites: [4][]trackSprite{
				{{16000, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}},
				{{16001, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}},
				{{16002, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}},
				{{16003, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}},
			},
			support:   metalA(paint.MetalSupportTubes, paint.SupportPlaceCentre, 0, 0),
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
				{{16004, xyz(0, 0, 0), box(16, 16, 0, 16, 16, 3)}},
				{{16005, xyz(0, 0, 0), box(16, 16, 0, 16, 16, 3)}},
				{{16006, xyz(0, 0, 0), box(16, 16, 0, 16, 16, 3)}},
				{{16007, xyz(0, 0, 0), box(16, 16, 0, 16, 16, 3)}},
			},
			segments:  paint.SegmentB4 | paint.SegmentBC | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentCC | paint.SegmentD4,
			clearance: 32,
		},
		{ // 3
			sprites: [4][]trackSprite{
				{{16008, xyz(0, 0, 0), box(6, 0, 0, 20, 32, 3)}},
				{{16009, xyz(0, 0, 0), box(6, 0, 0, 20, 32, 3)}},
				{{16010, xyz(0, 0, 0), box(6, 0, 0, 20, 32, 3)}},
				{{16011, xyz(0, 0, 0), box(6, 0, 0, 20, 32, 3)}},
			},
			support:   metalA(paint.MetalSupportTubes, paint.SupportPlaceCentre, 0, 0),
			tunnels:   [4]tunnelSpec{{}, {}, rightTunnel(0, paint.TunnelSquareFlat), leftTunnel(0, paint.TunnelSquareFlat)},
			segments:  paint.SegmentB8 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentD0 | paint.SegmentD4 | paint.SegmentBC,
			clearance: 32,
		},
	},
	inverted: []trackTile{
		{ // 0
			sprites: [4][]trackSprite{
				{{26379, xyz(0, 0, 24), box(0, 6, 22, 32, 20, 3)}},
				{{26380, xyz(0, 0, 24), box(0, 6, 22, 32, 20, 3)}},
				{{26381, xyz(0, 0, 24), box(0, 6, 22, 32, 20, 3)}},
				{{26382, xyz(0, 0, 24), box(0, 6, 22, 32, 20, 3)}},
			},
			support:   metalA(paint.MetalSupportTubesInverted, paint.SupportPlaceCentre, 0, 36),
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
				{{26383, xyz(0, 0, 24), box(16, 16, 22, 16, 16, 3)}},
				{{26384, xyz(0, 0, 24), box(16, 16, 22, 16, 16, 3)}},
				{{26385, xyz(0, 0, 24), box(16, 16, 22, 16, 16, 3)}},
				{{26386, xyz(0, 0, 24), box(16, 16, 22, 16, 16, 3)}},
			},
			segments:  paint.SegmentB4 | paint.SegmentBC | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentCC | paint.SegmentD4,
			clearance: 48,
		},
		{ // 3
			sprites: [4][]trackSprite{
				{{26387, xyz(0, 0, 24), box(6, 0, 22, 20, 32, 3)}},
				{{26388, xyz(0, 0, 24), box(6, 0, 22, 20, 32, 3)}},
				{{26389, xyz(0, 0, 24), box(6, 0, 22, 20, 32, 3)}},
				{{26390, xyz(0, 0, 24), box(6, 0, 22, 20, 32, 3)}},
			},
			support:   metalA(paint.MetalSupportTubesInverted, paint.SupportPlaceCentre, 0, 36),
			tunnels:   [4]tunnelSpec{{}, {}, rightTunnel(0, paint.TunnelInvertedFlat), leftTunnel(0, paint.TunnelInvertedFlat)},
			segments:  paint.SegmentB8 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentD0 | paint.SegmentD4 | paint.SegmentBC,
			clearance: 48,
		},
	},
}

var leftBankedQuarterTurn3Piece = trackPiece{
	normal: []trackTile{
		{ // 0
			sprites: [4][]trackSprite{
				{{16012, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}, {16013, xyz(0, 0, 0), box(0, 6, 27, 32, 20, 0)}},
				{{16014, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}, {16015, xyz(0, 0, 0), box(0, 6, 27, 32, 20, 0)}},
				{{16016, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}},
				{{16017, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}},
			},
			support:   metalA(paint.MetalSupportTubes, paint.SupportPlaceCentre, 0, 0),
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
				{{16018, xyz(0, 0, 0), box(16, 16, 0, 16, 16, 3)}, {16019, xyz(0, 0, 0), box(16, 16, 27, 16, 16, 0)}},
				{{16020, xyz(0, 0, 0), box(16, 16, 0, 16, 16, 3)}, {16021, xyz(0, 0, 0), box(16, 16, 27, 16, 16, 0)}},
				{{16022, xyz(0, 0, 0), box(16, 16, 0, 16, 16, 3)}},
				{{16023, xyz(0, 0, 0), box(16, 16, 0, 16, 16, 3)}},
			},
			segments:  paint.SegmentB4 | paint.SegmentBC | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentCC | paint.SegmentD4,
			clearance: 32,
		},
		{ // 3
			sprites: [4][]trackSprite{
				{{16024, xyz(0, 0, 0), box(6, 0, 0, 20, 32, 3)}, {16025, xyz(0, 0, 0), box(6, 0, 27, 20, 32, 0)}},
				{{16026, xyz(0, 0, 0), box(6, 0, 0, 20, 32, 3)}, {16027, xyz(0, 0, 0), box(6, 0, 27, 20, 32, 0)}},
				{{16028, xyz(0, 0, 0), box(6, 0, 0, 20, 32, 3)}},
				{{16029, xyz(0, 0, 0), box(6, 0, 0, 20, 32, 3)}},
			},
			support:   metalA(paint.MetalSupportTubes, paint.SupportPlaceCentre, 0, 0),
			tunnels:   [4]tunnelSpec{{}, {}, rightTunnel(0, paint.TunnelSquareFlat), leftTunnel(0, paint.TunnelSquareFlat)},
			segments:  paint.SegmentB8 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentD0 | paint.SegmentD4 | paint.SegmentBC,
			clearance: 32,
		},
	},
	inverted: []trackTile{
		{ // 0
			sprites: [4][]trackSprite{
				{{26391, xyz(0, 0, 24), box(0, 6, 22, 32, 20, 3)}, {26392, xyz(0, 0, 24), box(0, 6, 49, 32, 20, 0)}},
				{{26393, xyz(0, 0, 24), box(0, 6, 22, 32, 20, 3)}, {26394, xyz(0, 0, 24), box(0, 6, 49, 32, 20, 0)}},
				{{26395, xyz(0, 0, 24), box(0, 6, 22, 32, 20, 3)}},
				{{26396, xyz(0, 0, 24), box(0, 6, 22, 32, 20, 3)}},
			},
			support:   metalA(paint.MetalSupportTubesInverted, paint.SupportPlaceCentre, 0, 36),
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
				{{26397, xyz(0, 0, 24), box(16, 16, 22, 16, 16, 3)}, {26398, xyz(0, 0, 24), box(16, 16, 49, 16, 16, 0)}},
				{{26399, xyz(0, 0, 24), box(16, 16, 22, 16, 16, 3)}, {26400, xyz(0, 0, 24), box(16, 16, 49, 16, 16, 0)}},
				{{26401, xyz(0, 0, 24), box(16, 16, 22, 16, 16, 3)}},
				{{26402, xyz(0, 0, 24), box(16, 16, 22, 16, 16, 3)}},
			},
			segments:  paint.SegmentB4 | paint.SegmentBC | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentCC | paint.SegmentD4,
			clearance: 48,
		},
		{ // 3
			sprites: [4][]trackSprite{
				{{26403, xyz(0, 0, 24), box(6, 0, 22, 20, 32, 3)}, {26404, xyz(0, 0, 24), box(6, 0, 49, 20, 32, 0)}},
				{{26405, xyz(0, 0, 24), box(6, 0, 22, 20, 32, 3)}, {26406, xyz(0, 0, 24), box(6, 0, 49, 20, 32, 0)}},
				{{26407, xyz(0, 0, 24), box(6, 0, 22, 20, 32, 3)}},
				{{26408, xyz(0, 0, 24), box(6, 0, 22, 20, 32, 3)}},
			},
			support:   metalA(paint.MetalSupportTubesInverted, paint.SupportPlaceCentre, 0, 36),
			tunnels:   [4]tunnelSpec{{}, {}, rightTunnel(0, paint.TunnelInvertedFlat), leftTunnel(0, paint.TunnelInvertedFlat)},
			segments:  paint.SegmentB8 | paint.SegmentC4 | paint.SegmentC8 | paint.SegmentD0 | paint.SegmentD4 | paint.SegmentBC,
			clearance: 48,
		},
	},
}
