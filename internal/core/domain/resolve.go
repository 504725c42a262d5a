package domain

// Resolution partitions a track's textures into referenced, unused and
// missing sets. Every on-disk texture lands in exactly one of Referenced
// or Unused; Missing holds referenced names with no file behind them.
type Resolution struct {
	Referenced []string // unique referenced names, first-seen order
	Unused     []string // on-disk names never referenced, disk order
	Missing    []string // referenced names absent on disk, first-seen order
}

// Resolve computes the texture resolution for a set of models against the
// textures present on disk. Comparison is case-insensitive; the returned
// sets carry canonical (lowercased) names. Pure function, no I/O.
func Resolve(models []Model, onDisk []string) Resolution {
	diskSet := make(map[string]bool, len(onDisk))
	for _, name := range onDisk {
		diskSet[CanonicalName(name)] = true
	}

	var res Resolution
	seen := make(map[string]bool)
	for _, m := range models {
		for _, ref := range m.MipRefs {
			name := CanonicalName(ref)
			if seen[name] {
				continue
			}
			seen[name] = true
			res.Referenced = append(res.Referenced, name)
			if !diskSet[name] {
				res.Missing = append(res.Missing, name)
			}
		}
	}

	for _, name := range onDisk {
		if !seen[CanonicalName(name)] {
			res.Unused = append(res.Unused, CanonicalName(name))
		}
	}

	return res
}
