// Package graphml loads the GraphML subset SPEC_FULL.md §4.9 defines:
// a single <graph> element whose <node> elements carry "x"/"y" data keys
// and whose <edge> elements reference node ids by "source"/"target".
// Load parses that XML, resolves it to the ([]geom.Point, []core.RawEdge)
// pair the rest of the pipeline expects, and runs validate.Check over the
// result before handing it back.
package graphml
