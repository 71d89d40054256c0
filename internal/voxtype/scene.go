package voxtype

// NodeKind identifies a scene graph record type.
type NodeKind uint8

const (
	NodeTransform NodeKind = iota
	NodeGroup
	NodeShape
	NodeLayer
)

// String returns the chunk tag associated with the kind.
func (k NodeKind) String() string {
	switch k {
	case NodeTransform:
		return "nTRN"
	case NodeGroup:
		return "nGRP"
	case NodeShape:
		return "nSHP"
	case NodeLayer:
		return "LAYR"
	default:
		return "unknown"
	}
}

// NoReference marks an unused signed reserved field.
const NoReference int32 = -1

// SceneNode is a scene graph record. Nodes reference each other and models
// by id only; ids may have no matching node.
type SceneNode interface {
	NodeID() uint32
	Kind() NodeKind
}

// TransformNode positions a single child node.
type TransformNode struct {
	ID         uint32
	Attributes Dict
	ChildID    uint32
	Reserved   int32
	LayerID    uint32

	// Frames holds one attribute set per animation frame (_r, _t, _f).
	Frames []Dict
}

func (n *TransformNode) NodeID() uint32 { return n.ID }
func (n *TransformNode) Kind() NodeKind { return NodeTransform }

// GroupNode collects child nodes.
type GroupNode struct {
	ID         uint32
	Attributes Dict
	Children   []uint32
}

func (n *GroupNode) NodeID() uint32 { return n.ID }
func (n *GroupNode) Kind() NodeKind { return NodeGroup }

// ShapeModel is one model instance of a shape node.
type ShapeModel struct {
	ModelID    uint32
	Attributes Dict
}

// ShapeNode places one or more models.
type ShapeNode struct {
	ID         uint32
	Attributes Dict
	Models     []ShapeModel
}

func (n *ShapeNode) NodeID() uint32 { return n.ID }
func (n *ShapeNode) Kind() NodeKind { return NodeShape }

// Layer is a LAYR record.
type Layer struct {
	ID         uint32
	Attributes Dict
	Reserved   int32
}

func (n *Layer) NodeID() uint32 { return n.ID }
func (n *Layer) Kind() NodeKind { return NodeLayer }

type nodeKey struct {
	kind NodeKind
	id   uint32
}

// SceneGraph stores scene records in arrival order with lookup by kind and id.
//
// Layers share the id space of their own kind only; a layer and a transform
// with the same id are distinct entries. When an id repeats within a kind,
// lookups return the latest record while Nodes keeps both.
type SceneGraph struct {
	nodes []SceneNode
	index map[nodeKey]int
}

// Add appends a node.
func (g *SceneGraph) Add(n SceneNode) {
	if g.index == nil {
		g.index = make(map[nodeKey]int)
	}
	g.index[nodeKey{kind: n.Kind(), id: n.NodeID()}] = len(g.nodes)
	g.nodes = append(g.nodes, n)
}

// Len returns the number of stored nodes.
func (g *SceneGraph) Len() int {
	return len(g.nodes)
}

// Nodes returns the nodes in arrival order.
func (g *SceneGraph) Nodes() []SceneNode {
	out := make([]SceneNode, len(g.nodes))
	copy(out, g.nodes)
	return out
}

// Count returns the number of nodes of the given kind.
func (g *SceneGraph) Count(kind NodeKind) int {
	n := 0
	for _, node := range g.nodes {
		if node.Kind() == kind {
			n++
		}
	}
	return n
}

func (g *SceneGraph) lookup(kind NodeKind, id uint32) (SceneNode, bool) {
	i, ok := g.index[nodeKey{kind: kind, id: id}]
	if !ok {
		return nil, false
	}
	return g.nodes[i], true
}

// Transform returns the transform node with the given id.
func (g *SceneGraph) Transform(id uint32) (*TransformNode, bool) {
	n, ok := g.lookup(NodeTransform, id)
	if !ok {
		return nil, false
	}
	return n.(*TransformNode), true
}

// Group returns the group node with the given id.
func (g *SceneGraph) Group(id uint32) (*GroupNode, bool) {
	n, ok := g.lookup(NodeGroup, id)
	if !ok {
		return nil, false
	}
	return n.(*GroupNode), true
}

// Shape returns the shape node with the given id.
func (g *SceneGraph) Shape(id uint32) (*ShapeNode, bool) {
	n, ok := g.lookup(NodeShape, id)
	if !ok {
		return nil, false
	}
	return n.(*ShapeNode), true
}

// Layer returns the layer with the given id.
func (g *SceneGraph) Layer(id uint32) (*Layer, bool) {
	n, ok := g.lookup(NodeLayer, id)
	if !ok {
		return nil, false
	}
	return n.(*Layer), true
}
