// ABOUTME: Pipeline graph generation using graphviz
// ABOUTME: Renders leads grouped under their pipeline status as DOT
package viz

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"
	"github.com/goccy/go-graphviz/cgraph"

	"github.com/harperreed/leadgen/scoring"
	"github.com/harperreed/leadgen/store"
)

// GraphGenerator renders lead graphs from a store.
type GraphGenerator struct {
	store *store.Store
}

func NewGraphGenerator(s *store.Store) *GraphGenerator {
	return &GraphGenerator{store: s}
}

// GeneratePipelineGraph draws each pipeline status as a hub node with
// its leads attached, colored by heat.
func (g *GraphGenerator) GeneratePipelineGraph() (string, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to create graphviz instance: %w", err)
	}
	defer gv.Close()

	graph, err := gv.Graph()
	if err != nil {
		return "", fmt.Errorf("failed to create graph: %w", err)
	}
	defer graph.Close()

	graph.SetRankDir(cgraph.LRRank)

	leads, err := g.store.Leads()
	if err != nil {
		return "", fmt.Errorf("failed to fetch leads: %w", err)
	}

	now := g.store.Now()
	statusNodes := make(map[string]*cgraph.Node)
	for _, lead := range leads {
		statusName := string(lead.Status)
		if _, exists := statusNodes[statusName]; !exists {
			node, err := graph.CreateNodeByName(statusName)
			if err != nil {
				return "", fmt.Errorf("failed to create status node: %w", err)
			}
			node.SetShape("box")
			node.SetStyle("filled")
			node.SetFillColor("lightblue")
			statusNodes[statusName] = node
		}

		score := scoring.Score(lead, now)
		heat := scoring.HeatFor(score)
		leadNode, err := graph.CreateNodeByName(lead.ID)
		if err != nil {
			return "", fmt.Errorf("failed to create lead node: %w", err)
		}
		leadNode.SetLabel(fmt.Sprintf("%s\n%s (%d)", lead.Name, heat, score))
		leadNode.SetStyle("filled")
		leadNode.SetFillColor(heatColor(heat))

		if _, err := graph.CreateEdgeByName("", statusNodes[statusName], leadNode); err != nil {
			return "", fmt.Errorf("failed to create edge: %w", err)
		}
	}

	var buf bytes.Buffer
	if err := gv.Render(ctx, graph, graphviz.XDOT, &buf); err != nil {
		return "", fmt.Errorf("failed to render graph: %w", err)
	}

	return buf.String(), nil
}

func heatColor(heat scoring.Heat) string {
	switch heat {
	case scoring.HeatHot:
		return "lightcoral"
	case scoring.HeatWarm:
		return "lightyellow"
	default:
		return "lightcyan"
	}
}
