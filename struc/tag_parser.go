package struc

import (
	"go/token"

	"github.com/fatih/structtag"

	"github.com/m4gshm/flatpath/logger"
)

const jsonTag = "json"

// ParseFlatTag extracts the flattening annotation with key tagKey from a raw
// struct tag. It returns nil if the tag carries no such annotation. On
// success the annotation and the json leaf customizations are consumed: Rest
// holds the re-rendered remainder of the tag for the rewritten field.
func ParseFlatTag(tagKey TagName, rawTag string, pos token.Position) (*FlatTag, error) {
	if len(rawTag) == 0 {
		return nil, nil
	}
	tags, err := structtag.Parse(rawTag)
	if err != nil {
		// a malformed tag is not ours to reject, the field stays untouched
		logger.Warnf("%s: unparseable tag %q: %v", pos, rawTag, err)
		return nil, nil
	}

	var flats []*structtag.Tag
	for _, tag := range tags.Tags() {
		if tag.Key == tagKey {
			flats = append(flats, tag)
		}
	}
	if len(flats) == 0 {
		return nil, nil
	}
	if len(flats) > 1 {
		return nil, Diag(DuplicateAnnotation, pos, "%s can only be applied once", tagKey)
	}

	path := make([]string, 0, 1+len(flats[0].Options))
	for _, key := range append([]string{flats[0].Name}, flats[0].Options...) {
		if len(key) > 0 {
			path = append(path, key)
		}
	}
	if len(path) == 0 {
		return nil, Diag(EmptyPath, pos, "%s requires at least one key", tagKey)
	}

	flat := &FlatTag{Path: path}
	if leaf, err := tags.Get(jsonTag); err == nil {
		flat.LeafName = leaf.Name
		flat.LeafOpts = leaf.Options
	}
	tags.Delete(tagKey, jsonTag)
	flat.Rest = tags.String()
	return flat, nil
}
