package smbios

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// fieldParser is implemented by variable-length fields that decode
// themselves from the formatted area.
type fieldParser interface {
	parseField(t *Table, offset int) (int, error)
}

const (
	tagKey            = "smbios"
	tagSkip           = "skip"
	tagIgnore         = "-"
	tagDefault        = "default"
	tagSeparator      = ","
	tagValueSeparator = "="
)

var (
	ErrUnsupportedType = errors.New("smbios: unsupported field type")

	fieldParserType = reflect.TypeOf((*fieldParser)(nil)).Elem()
)

type fieldTag struct {
	ignore   bool
	skip     int
	defValue uint64
}

func parseTag(tag string) fieldTag {
	var ft fieldTag
	for part := range strings.SplitSeq(tag, tagSeparator) {
		key, value, _ := strings.Cut(part, tagValueSeparator)
		switch key {
		case tagIgnore:
			ft.ignore = true
		case tagSkip:
			ft.skip, _ = strconv.Atoi(value)
		case tagDefault:
			ft.defValue, _ = strconv.ParseUint(value, 0, 64)
		}
	}
	return ft
}

// parseType overlays the struct sp on the formatted area of t starting at
// offset. Fields are read in declaration order until one no longer fits in
// the formatted area; that field and all later ones get their default tag
// value (or zero) and are never read.
func parseType(t *Table, offset int, sp any) (int, error) {
	sv, ok := sp.(reflect.Value)
	if !ok {
		sv = reflect.Indirect(reflect.ValueOf(sp))
	}
	st := sv.Type()

	i := 0
fields:
	for ; i < sv.NumField(); i++ {
		f := st.Field(i)
		fv := sv.Field(i)
		tag := parseTag(f.Tag.Get(tagKey))
		if tag.ignore {
			continue
		}

		start := offset + tag.skip
		if start >= len(t.FormattedArea) {
			break fields
		}

		var err error
		switch fv.Kind() {
		case reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			size := int(fv.Type().Size())
			if start+size > len(t.FormattedArea) {
				break fields
			}
			var v uint64
			switch size {
			case 1:
				b, _ := t.GetByteAt(start)
				v = uint64(b)
			case 2:
				w, _ := t.GetWordAt(start)
				v = uint64(w)
			case 4:
				d, _ := t.GetDwordAt(start)
				v = uint64(d)
			case 8:
				v, _ = t.GetQwordAt(start)
			}
			fv.SetUint(v)
			offset = start + size
		case reflect.String:
			s, _ := t.GetStringAt(start)
			fv.SetString(s)
			offset = start + 1
		default:
			if reflect.PointerTo(fv.Type()).Implements(fieldParserType) {
				offset, err = fv.Addr().Interface().(fieldParser).parseField(t, start)
				break
			}
			if fv.Kind() == reflect.Struct {
				offset, err = parseType(t, start, fv)
				break
			}
			return offset, fmt.Errorf("%w: %s.%s is %s", ErrUnsupportedType, st.Name(), f.Name, fv.Kind())
		}
		if err != nil {
			return offset, fmt.Errorf("parse %s.%s: %w", st.Name(), f.Name, err)
		}
	}

	for ; i < sv.NumField(); i++ {
		fv := sv.Field(i)
		tag := parseTag(st.Field(i).Tag.Get(tagKey))
		if tag.ignore {
			continue
		}
		switch fv.Kind() {
		case reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			fv.SetUint(tag.defValue)
		}
	}

	return offset, nil
}
