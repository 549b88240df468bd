package process

// Strategy is a named, configurable rule that alters traversal execution.
// The name doubles as the wire tag name, so it must be the server-side
// strategy class name (for example "SubgraphStrategy").
type Strategy interface {
	StrategyName() string
	StrategyConfiguration() map[string]any
}

// TraversalStrategy is the generic Strategy record.
type TraversalStrategy struct {
	Name          string
	Configuration map[string]any
}

// NewStrategy returns a strategy with the given name and configuration.
func NewStrategy(name string, configuration map[string]any) TraversalStrategy {
	return TraversalStrategy{Name: name, Configuration: configuration}
}

func (s TraversalStrategy) StrategyName() string                  { return s.Name }
func (s TraversalStrategy) StrategyConfiguration() map[string]any { return s.Configuration }

// SubgraphStrategy restricts traversals to the elements matched by the given
// filters. Nil filters are left out of the configuration.
func SubgraphStrategy(vertices, edges, vertexProperties Traversal) TraversalStrategy {
	config := map[string]any{}
	if vertices != nil {
		config["vertices"] = vertices
	}
	if edges != nil {
		config["edges"] = edges
	}
	if vertexProperties != nil {
		config["vertexProperties"] = vertexProperties
	}
	return NewStrategy("SubgraphStrategy", config)
}

// PartitionStrategy scopes reads and writes to named partitions.
func PartitionStrategy(partitionKey, writePartition string, readPartitions ...string) TraversalStrategy {
	config := map[string]any{
		"partitionKey":   partitionKey,
		"writePartition": writePartition,
	}
	if len(readPartitions) > 0 {
		config["readPartitions"] = readPartitions
	}
	return NewStrategy("PartitionStrategy", config)
}

// ReadOnlyStrategy rejects mutating steps.
func ReadOnlyStrategy() TraversalStrategy {
	return NewStrategy("ReadOnlyStrategy", nil)
}

// Traverser is a value flowing through a traversal with its multiplicity.
type Traverser struct {
	Object any
	Bulk   int64
}

// NewTraverser returns a traverser with bulk 1.
func NewTraverser(object any) Traverser {
	return Traverser{Object: object, Bulk: 1}
}
