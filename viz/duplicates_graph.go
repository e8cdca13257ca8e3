// ABOUTME: Duplicate cluster graph generation using graphviz
// ABOUTME: Renders shared-email clusters as star graphs in DOT
package viz

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/harperreed/leadgen/dedup"
)

// GenerateDuplicatesGraph draws one hub node per duplicated email with
// the colliding leads attached.
func (g *GraphGenerator) GenerateDuplicatesGraph() (string, error) {
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

	graph.SetLayout("neato")

	leads, err := g.store.Leads()
	if err != nil {
		return "", fmt.Errorf("failed to fetch leads: %w", err)
	}

	for _, group := range dedup.FindDuplicates(leads) {
		hub, err := graph.CreateNodeByName(group.Email)
		if err != nil {
			return "", fmt.Errorf("failed to create email node: %w", err)
		}
		hub.SetShape("box")
		hub.SetStyle("filled")
		hub.SetFillColor("lightyellow")

		for _, lead := range group.Leads {
			node, err := graph.CreateNodeByName(lead.ID)
			if err != nil {
				return "", fmt.Errorf("failed to create lead node: %w", err)
			}
			node.SetLabel(fmt.Sprintf("%s\n%s", lead.Name, lead.Status))
			if _, err := graph.CreateEdgeByName("", hub, node); err != nil {
				return "", fmt.Errorf("failed to create edge: %w", err)
			}
		}
	}

	var buf bytes.Buffer
	if err := gv.Render(ctx, graph, graphviz.XDOT, &buf); err != nil {
		return "", fmt.Errorf("failed to render graph: %w", err)
	}

	return buf.String(), nil
}
