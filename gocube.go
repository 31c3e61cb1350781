// Package gocube models a 3x3x3 Rubik's cube as 27 cubies and animates its
// face turns.
//
// # Model
//
// A Store owns the cubies in a fixed arena and a slot index array saying
// which cubie sits in which of the 27 grid slots. A face turn is a
// permutation of that array, written as two 4-cycles over the face's slot
// list (corners 0->2->8->6, edges 1->5->7->3), plus an exact orientation
// update of the turned cubies.
//
// A Presenter holds the visual transform of every cubie and tweens it
// toward the logical state on frame ticks. The Store is updated instantly;
// the Presenter catches up, so the two may disagree mid-animation.
//
// # Quick Start
//
//	store := gocube.NewStore()
//	presenter := gocube.NewPresenter()
//	player := gocube.NewPlayer(store, presenter)
//
//	importer := gocube.NewImporter(store)
//	importer.SetPlayer(player)
//	importer.SetPresenter(presenter)
//	for i, colors := range []string{"wwwwwwwww", "ggggggggg", "rrrrrrrrr",
//	    "bbbbbbbbb", "ooooooooo", "yyyyyyyyy"} {
//	    if err := importer.ImportFace(i, colors); err != nil {
//	        log.Fatal(err)
//	    }
//	}
//
//	if err := player.Solve("R U R' U'"); err != nil {
//	    log.Fatal(err)
//	}
//	player.Run(ctx)
//
// # Faces
//
// Faces are scanned and indexed in the order Top (U), Front (F), Right (R),
// Back (B), Left (L), Bottom (D). Each face has nine slots in a fixed
// traversal order; scan data lists colors in that order using the codes
// r, g, b, y, o and w.
//
// # Notation
//
// Solutions are whitespace-separated tokens: a face letter optionally
// followed by ' (reverse) or 2 (double). A double turn is played as two
// forward quarter turns.
package gocube
