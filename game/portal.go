package game

import (
	"math"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// PortalDirection selects the neighbour to travel to
type PortalDirection int

const (
	PortalNext PortalDirection = iota
	PortalPrev
)

// PortalNode is one teleport station. Its neighbours are references into
// the owning network, never owned by the node.
type PortalNode struct {
	ID       uuid.UUID
	Index    int
	Position Vec2
	Rect     Rect

	next *PortalNode
	prev *PortalNode
}

// Next returns the following node in the ring
func (n *PortalNode) Next() *PortalNode { return n.next }

// Prev returns the preceding node in the ring
func (n *PortalNode) Prev() *PortalNode { return n.prev }

// PortalNetwork owns the portal ring
type PortalNetwork struct {
	// Current is the node the player can use right now, if any
	Current *PortalNode

	// Animation frame shared by every portal
	Frame int

	nodes     []*PortalNode
	animTimer float64

	cfg   PortalConfig
	audio Audio
	log   *logrus.Entry
}

// NewPortalNetwork links one node per rectangle into a ring in the given order
func NewPortalNetwork(rects []Rect, cfg PortalConfig, svc Services) *PortalNetwork {
	nodes := make([]*PortalNode, len(rects))
	for i, r := range rects {
		nodes[i] = &PortalNode{ID: uuid.New(), Index: i, Position: r.Center(), Rect: r}
	}
	for i, n := range nodes {
		n.next = nodes[(i+1)%len(nodes)]
		n.prev = nodes[(i-1+len(nodes))%len(nodes)]
	}

	return &PortalNetwork{
		nodes: nodes,
		cfg:   cfg,
		audio: orNop(svc.Audio),
		log:   orDiscard(svc.Log),
	}
}

// Nodes returns the nodes in ring order
func (n *PortalNetwork) Nodes() []*PortalNode { return n.nodes }

// Nearest returns the closest node strictly inside the interaction radius
func (n *PortalNetwork) Nearest(pos Vec2) *PortalNode {
	var best *PortalNode
	bestDist := math.Inf(1)
	for _, node := range n.nodes {
		d := node.Position.DistanceTo(pos)
		if d < n.cfg.InteractionRadius && d < bestDist {
			best, bestDist = node, d
		}
	}
	return best
}

// TryTeleport moves the player from node to its neighbour. It is gated by
// the player's portal cooldown and refused for a dead player.
func (n *PortalNetwork) TryTeleport(p *Player, node *PortalNode, dir PortalDirection, now float64) bool {
	if node == nil || p.Dead {
		return false
	}
	if now-p.lastPortal < n.cfg.Cooldown {
		return false
	}

	target := node.next
	if dir == PortalPrev {
		target = node.prev
	}
	if target == nil {
		return false
	}

	p.SetCenter(target.Position)
	p.lastHit = now
	p.lastPortal = now
	n.audio.Play(SoundTeleport)

	n.log.WithFields(logrus.Fields{
		"id":   p.ID,
		"from": node.Index,
		"to":   target.Index,
	}).Info("teleported")
	return true
}

// Update animates the portals, tracks the usable node and handles the
// teleport keys. Next wins when both keys are held.
func (n *PortalNetwork) Update(dt float64, p *Player, in InputState) {
	if n.cfg.Frames > 1 && n.cfg.AnimationInterval > 0 {
		n.animTimer += dt
		if n.animTimer >= n.cfg.AnimationInterval {
			n.animTimer -= n.cfg.AnimationInterval
			n.Frame = (n.Frame + 1) % n.cfg.Frames
		}
	}

	n.Current = n.Nearest(p.Center())
	if n.Current == nil {
		return
	}

	switch {
	case in.PortalNext:
		n.TryTeleport(p, n.Current, PortalNext, p.Now())
	case in.PortalPrev:
		n.TryTeleport(p, n.Current, PortalPrev, p.Now())
	}
}
