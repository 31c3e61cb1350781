package gocube

// Predefined moves, one per notation token the solution API can emit.
//
// Example:
//
//	store.ApplyMoves([]gocube.Move{gocube.R, gocube.U, gocube.RPrime})
var (
	U      = Move{Face: FaceU, Turn: CW}
	UPrime = Move{Face: FaceU, Turn: CCW}
	U2     = Move{Face: FaceU, Turn: Double}

	F      = Move{Face: FaceF, Turn: CW}
	FPrime = Move{Face: FaceF, Turn: CCW}
	F2     = Move{Face: FaceF, Turn: Double}

	R      = Move{Face: FaceR, Turn: CW}
	RPrime = Move{Face: FaceR, Turn: CCW}
	R2     = Move{Face: FaceR, Turn: Double}

	B      = Move{Face: FaceB, Turn: CW}
	BPrime = Move{Face: FaceB, Turn: CCW}
	B2     = Move{Face: FaceB, Turn: Double}

	L      = Move{Face: FaceL, Turn: CW}
	LPrime = Move{Face: FaceL, Turn: CCW}
	L2     = Move{Face: FaceL, Turn: Double}

	D      = Move{Face: FaceD, Turn: CW}
	DPrime = Move{Face: FaceD, Turn: CCW}
	D2     = Move{Face: FaceD, Turn: Double}
)

// AllMoves lists the 18 face moves in notation order (U U' U2 F ...).
var AllMoves = []Move{
	U, UPrime, U2,
	F, FPrime, F2,
	R, RPrime, R2,
	B, BPrime, B2,
	L, LPrime, L2,
	D, DPrime, D2,
}

// SexyMove is R U R' U'; six repetitions return the cube to its start.
var SexyMove = []Move{R, U, RPrime, UPrime}
