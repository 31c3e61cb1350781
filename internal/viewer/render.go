package viewer

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/westphae/quaternion"

	"github.com/SeamusWaldron/gocube_viewer"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	phaseStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	moveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// ProjectFace samples the visual cube as seen looking straight at face:
// every cubie whose drawn position lies in the face's outer layer
// contributes the sticker currently turned toward the face. Cells are in
// the face's traversal order. Cubies caught mid-turn land in the nearest
// cell; cells nothing lands in stay Blank.
func ProjectFace(store *gocube.Store, presenter *gocube.Presenter, face gocube.Face) [9]gocube.Color {
	slots := face.Slots()
	center := gocube.SlotPos(slots[4])
	colDir := sub(gocube.SlotPos(slots[1]), gocube.SlotPos(slots[0]))
	rowDir := sub(gocube.SlotPos(slots[3]), gocube.SlotPos(slots[0]))
	axis := toVec(face.Axis())

	var out [9]gocube.Color
	for i := 0; i < 27; i++ {
		id := gocube.CubieID(i)
		p := presenter.Transform(id).Position
		if math.Round(p.Dot(axis)) != 1 {
			continue
		}
		rel := p.Sub(toVec(center))
		col := int(math.Round(rel.Dot(toVec(colDir)))) + 1
		row := int(math.Round(rel.Dot(toVec(rowDir)))) + 1
		if col < 0 || col > 2 || row < 0 || row > 2 {
			continue
		}
		side := presenter.Facing(id, axis)
		out[row*3+col] = store.Cubie(id).Color(side)
	}
	return out
}

// renderGrid draws nine cells as colored blocks, three rows of three.
func renderGrid(cells [9]gocube.Color, width int) string {
	var b strings.Builder
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			b.WriteString(cell(cells[row*3+col], width))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// renderNet draws the logical cube as an unfolded net: U above L F R B,
// D below.
func renderNet(c *gocube.Cube) string {
	var b strings.Builder
	pad := strings.Repeat(" ", 6)

	for row := 0; row < 3; row++ {
		b.WriteString(pad)
		b.WriteString(netRow(c, gocube.FaceU, row))
		b.WriteString("\n")
	}
	for row := 0; row < 3; row++ {
		for _, f := range []gocube.Face{gocube.FaceL, gocube.FaceF, gocube.FaceR, gocube.FaceB} {
			b.WriteString(netRow(c, f, row))
		}
		b.WriteString("\n")
	}
	for row := 0; row < 3; row++ {
		b.WriteString(pad)
		b.WriteString(netRow(c, gocube.FaceD, row))
		b.WriteString("\n")
	}
	return b.String()
}

func netRow(c *gocube.Cube, f gocube.Face, row int) string {
	var b strings.Builder
	for col := 0; col < 3; col++ {
		b.WriteString(cell(c.Facelets[f][row*3+col], 2))
	}
	return b.String()
}

func cell(c gocube.Color, width int) string {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(c.Hex())).
		Render(strings.Repeat(" ", width))
}

func sub(a, b gocube.GridPos) gocube.GridPos {
	return gocube.GridPos{X: a.X - b.X, Y: a.Y - b.Y, Z: a.Z - b.Z}
}

func toVec(p gocube.GridPos) quaternion.Vec3 {
	return quaternion.Vec3{X: float64(p.X), Y: float64(p.Y), Z: float64(p.Z)}
}
