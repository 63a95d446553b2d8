package gdrive

import "context"

// rootObject synthesizes the object anchoring the emulated tree. The root is
// never fetched; the configured ID is trusted to denote an existing folder.
func (a *Adapter) rootObject() *Object {
	return &Object{ID: a.rootID, MimeType: MimeTypeFolder}
}

// resolve walks a normalized path segment by segment from the configured root
// and returns the object at the path, or found == false if a component is
// missing and createMissing is off. With createMissing on, missing components
// are created as folders, the final segment included.
//
// Every segment except the last must name a folder; the walk stops as soon as
// a component is missing or not a folder. Duplicate sibling names are not
// disambiguated: the first object the store returns wins. Resolutions and
// definite absences are memoized per path prefix in the adapter's cache.
func (a *Adapter) resolve(ctx context.Context, path string, createMissing bool) (obj *Object, found bool, err error) {
	if path == "" {
		return a.rootObject(), true, nil
	}

	parentID := a.rootID
	prefix := ""
	segs := splitPath(path)
	var cur *Object
	for i, seg := range segs {
		prefix = joinPath(prefix, seg)
		last := i == len(segs)-1

		cached, ok := a.cache.get(prefix)
		// With createMissing on, a cached absence or a cached non-folder at
		// an intermediate segment cannot settle the walk: the remote lookup
		// is folder-constrained and a miss creates the folder.
		if ok && createMissing && (cached == nil || (!last && !cached.IsFolder())) {
			ok = false
		}
		if ok {
			a.countCache(true)
			if cached == nil {
				return nil, false, nil
			}
			if !last && !cached.IsFolder() {
				return nil, false, nil
			}
			cur, parentID = cached, cached.ID
			continue
		}
		a.countCache(false)

		children, err := a.store.ChildrenByName(ctx, parentID, seg, !last)
		if err != nil {
			return nil, false, err
		}
		switch {
		case len(children) > 0:
			cur = children[0]
		case createMissing:
			cur, err = a.store.CreateFolder(ctx, parentID, seg)
			if err != nil {
				return nil, false, err
			}
			a.logger.Debug().Str("path", prefix).Str("id", cur.ID).Msg("created missing folder")
		default:
			a.cache.put(prefix, nil)
			return nil, false, nil
		}
		a.cache.put(prefix, cur)

		if !last && !cur.IsFolder() {
			return nil, false, nil
		}
		parentID = cur.ID
	}
	return cur, true, nil
}

// mustResolve resolves a path that is required to exist, mapping absence to
// ErrNotFound.
func (a *Adapter) mustResolve(ctx context.Context, path string) (*Object, error) {
	obj, found, err := a.resolve(ctx, path, false)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrNotFound
	}
	return obj, nil
}

// resolveParent resolves the containing folder of a path, creating missing
// intermediate folders when createMissing is on. Used by the write-class
// operations to locate the target parent.
func (a *Adapter) resolveParent(ctx context.Context, path string, createMissing bool) (*Object, error) {
	dir, _ := splitDir(path)
	parent, found, err := a.resolve(ctx, dir, createMissing)
	if err != nil {
		return nil, err
	}
	if !found || !parent.IsFolder() {
		return nil, ErrNotFound
	}
	return parent, nil
}

func (a *Adapter) countCache(hit bool) {
	if a.metrics == nil {
		return
	}
	if hit {
		a.metrics.cacheHits.Inc()
	} else {
		a.metrics.cacheMisses.Inc()
	}
}
