package multidim

import "coasterpaint/internal/paint"

// Vertical track.

var up90Piece = trackPiece{
	normal: []trackTile{
		{ // 0
			sprites: [4][]trackSprite{
				{{16474, xyz(0, 0, 8), box(4, 6, 8, 2, 20, 31)}},
				{{16475, xyz(0, 0, 8), box(24, 6, 8, 2, 20, 31)}},
				{{16476, xyz(0, 0, 8), box(24, 6, 8, 2, 20, 31)}},
				{{16477, xyz(0, 0, 8), box(4, 6, 8, 2, 20, 31)}},
			},
			tunnels:   [4]tunnelSpec{vertical(32), vertical(32), vertical(32), vertical(32)},
			segments:  paint.SegmentsAll,
			clearance: 32,
		},
		{ // 1
			segments:  paint.SegmentsAll,
			clearance: 32,
		},
	},
}

var up60ToUp90Piece = trackPiece{
	normal: []trackTile{
		{ // 0
			sprites: [4][]trackSprite{
				{{16478, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}},
				{{16479, xyz(0, 0, 0), box(24, 6, 0, 2, 20, 55)}},
				{{16480, xyz(0, 0, 0), box(24, 6, 0, 2, 20, 55)}},
				{{16481, xyz(0, 0, 0), box(0, 6, 0, 32, 20, 3)}},
			},
			support:   metalB(paint.MetalSupportTubes, paint.SupportPlaceCentre, 20, 0),
			tunnels:   [4]tunnelSpec{rotated(-8, paint.TunnelSquareSlopeStart), vertical(56), vertical(56), rotated(-8, paint.TunnelSquareSlopeStart)},
			segments:  paint.SegmentsAll,
			clearance: 72,
		},
		{ // 1
			segments:  paint.SegmentsAll,
			clearance: 32,
		},
	},
}

var up90ToUp60Piece = trackPiece{
	normal: []trackTile{
		{ // 0
			sprites: [4][]trackSprite{
				{{16482, xyz(0, 0, 0), box(4, 6, 8, 2, 20, 48)}},
				{{16483, xyz(0, 0, 0), box(24, 6, 8, 2, 20, 31)}},
				{{16484, xyz(0, 0, 0), box(24, 6, 8, 2, 20, 31)}},
				{{16485, xyz(0, 0, 0), box(4, 6, 8, 2, 20, 48)}},
			},
			tunnels:   [4]tunnelSpec{{}, rotated(48, paint.TunnelSquareSlopeEnd), rotated(48, paint.TunnelSquareSlopeEnd), {}},
			segments:  paint.SegmentsAll,
			clearance: 80,
		},
		{ // 1
			segments:  paint.SegmentsAll,
			clearance: 32,
		},
	},
}
