package migrate

import "vue-class-migrator/internal/extract"

// passthroughEntries carries the @Component option object entries into
// the options literal unchanged: same order, duplicate keys kept, value
// text verbatim. The engine does not interpret them; arbitrary framework
// options pass through opaquely.
func (e *Engine) passthroughEntries(model *extract.ComponentModel) entryLines {
	var out entryLines

	for _, opt := range model.Passthrough {
		out.add(1, opt.Key+": "+opt.Value+",")
	}

	return out
}
