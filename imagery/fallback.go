package imagery

import "path"

// Fallback returns the URL to try after lastURL failed to load. The chain is
// portrait variant, landscape variant, placeholder; ok is false once the
// placeholder itself has failed or lastURL is empty.
func (r *Resolver) Fallback(lastURL string) (next string, ok bool) {
	p := DecodePath(lastURL)
	if p == "" || p == r.placeholder {
		return "", false
	}
	if alt, found := r.landscapeFor(p); found && alt != p {
		return EncodePath(alt), true
	}
	return EncodePath(r.placeholder), true
}

// FallbackChain lists every URL Fallback would produce after failedURL, in
// order. It never holds more than MaxFallbackSteps URLs and, unless failedURL
// is the placeholder, always ends with the placeholder.
func (r *Resolver) FallbackChain(failedURL string) []string {
	var chain []string
	placeholder := EncodePath(r.placeholder)
	cur := failedURL
	for len(chain) < MaxFallbackSteps {
		next, ok := r.Fallback(cur)
		if !ok {
			return chain
		}
		chain = append(chain, next)
		if next == placeholder {
			return chain
		}
		cur = next
	}
	chain[len(chain)-1] = placeholder
	return chain
}

// landscapeFor finds the landscape counterpart of a portrait asset. Paths
// known to the manifest use their recorded orientation and siblings; other
// paths are classified and rewritten by filename convention.
func (r *Resolver) landscapeFor(p string) (string, bool) {
	if e, v, known := r.manifest.variantAt(p); known {
		if v.Orientation != Portrait {
			return "", false
		}
		alt, ok := e.exact(Landscape)
		return alt.Path, ok
	}
	dir, file := path.Split(p)
	if DetectOrientation(file) != Portrait {
		return "", false
	}
	return dir + swapToLandscape(file), true
}
