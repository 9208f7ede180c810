package joint

import (
	"fmt"

	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Label names one of the six canonical mid-plane node positions of an
// I-section template: the two web endpoints and the four flange corners.
type Label int

const (
	WebBot Label = iota
	WebTop
	TopLeft
	TopRight
	BotLeft
	BotRight
)

// labelCount is the number of canonical labels per station.
const labelCount = 6

func (l Label) String() string {
	switch l {
	case WebBot:
		return "web_bot"
	case WebTop:
		return "web_top"
	case TopLeft:
		return "top_left"
	case TopRight:
		return "top_right"
	case BotLeft:
		return "bot_left"
	case BotRight:
		return "bot_right"
	}
	return fmt.Sprintf("Label(%d)", int(l))
}

// Labels lists the six canonical labels in their generation order.
var Labels = [labelCount]Label{WebBot, WebTop, TopLeft, TopRight, BotLeft, BotRight}

// Station tags the cross-section location along a member's axis at which a
// node template is instantiated.
type Station string

const (
	StationBeam        Station = "beam"
	StationBeamAtFace  Station = "beamAtColFace"
	StationColumnLower Station = "colLower"
	StationColumnUpper Station = "colUpper"
	StationBeamYMin    Station = "yBeamMin"
	StationBeamYMax    Station = "yBeamMax"
)

// NodeGroup maps the six canonical labels of one member at one station to
// model node ids and their positions. Groups are immutable once built; the
// constructor rejects duplicate ids.
type NodeGroup struct {
	Station Station
	ids     [labelCount]int
	pts     [labelCount]v3.Vec
}

func newNodeGroup(st Station, ids [labelCount]int, pts [labelCount]v3.Vec) (*NodeGroup, error) {
	for i, a := range ids {
		if a <= 0 {
			return nil, fmt.Errorf("station %s: node id for %s must be positive", st, Labels[i])
		}
		for j := 0; j < i; j++ {
			if ids[j] == a {
				return nil, fmt.Errorf("station %s: node id %d assigned to both %s and %s",
					st, a, Labels[j], Labels[i])
			}
		}
	}
	return &NodeGroup{Station: st, ids: ids, pts: pts}, nil
}

// ID returns the node id for a label; ok is false when the group does not
// carry that label (nil receiver or zero id).
func (g *NodeGroup) ID(l Label) (int, bool) {
	if g == nil || int(l) < 0 || int(l) >= labelCount || g.ids[l] == 0 {
		return 0, false
	}
	return g.ids[l], true
}

// Point returns the generated position for a label.
func (g *NodeGroup) Point(l Label) v3.Vec {
	return g.pts[l]
}

// IDs returns the six node ids in label order.
func (g *NodeGroup) IDs() []int {
	out := make([]int, labelCount)
	copy(out, g.ids[:])
	return out
}
