package shared

import (
	"bytes"
	"encoding"
	"encoding/xml"
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
)

// XMLDeclaration opens every XML document.
const XMLDeclaration = `<?xml version="1.0" encoding="UTF-8" ?>`

// XMLRootElement wraps every XML document.
const XMLRootElement = "response"

// XMLItemElement wraps each element of a list.
const XMLItemElement = "item"

var textMarshalerType = reflect.TypeFor[encoding.TextMarshaler]()

// EncodeXML renders v as an XML document rooted at <response>.
//
// encoding/xml cannot express this layout: maps are not supported and
// structs would need a second set of tags. Instead the JSON shape is
// mirrored: map keys become elements in sorted order, struct fields become
// elements named by their json tag, slice elements are wrapped in <item>
// and nil values become empty elements.
func EncodeXML(v any) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(XMLDeclaration)
	if err := writeElement(&buf, XMLRootElement, reflect.ValueOf(v)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeElement(buf *bytes.Buffer, name string, v reflect.Value) error {
	buf.WriteString("<" + name + ">")
	if err := writeContent(buf, v); err != nil {
		return fmt.Errorf("element %q: %w", name, err)
	}
	buf.WriteString("</" + name + ">")
	return nil
}

func writeContent(buf *bytes.Buffer, v reflect.Value) error {
	for v.IsValid() && (v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface) {
		if v.IsNil() {
			return nil
		}
		if v.Type().Implements(textMarshalerType) {
			break
		}
		v = v.Elem()
	}
	if !v.IsValid() {
		return nil
	}

	if v.Type().Implements(textMarshalerType) {
		text, err := v.Interface().(encoding.TextMarshaler).MarshalText()
		if err != nil {
			return err
		}
		return xml.EscapeText(buf, text)
	}

	switch v.Kind() {
	case reflect.String:
		return xml.EscapeText(buf, []byte(v.String()))
	case reflect.Bool:
		buf.WriteString(strconv.FormatBool(v.Bool()))
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		buf.WriteString(strconv.FormatInt(v.Int(), 10))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		buf.WriteString(strconv.FormatUint(v.Uint(), 10))
	case reflect.Float32, reflect.Float64:
		buf.WriteString(strconv.FormatFloat(v.Float(), 'f', -1, v.Type().Bits()))
	case reflect.Slice, reflect.Array:
		for i := 0; i < v.Len(); i++ {
			if err := writeElement(buf, XMLItemElement, v.Index(i)); err != nil {
				return err
			}
		}
	case reflect.Map:
		return writeMap(buf, v)
	case reflect.Struct:
		return writeStruct(buf, v)
	default:
		return fmt.Errorf("unsupported type %s", v.Type())
	}
	return nil
}

func writeMap(buf *bytes.Buffer, v reflect.Value) error {
	if v.Type().Key().Kind() != reflect.String {
		return fmt.Errorf("unsupported map key type %s", v.Type().Key())
	}

	keys := v.MapKeys()
	sort.Slice(keys, func(i, j int) bool { return keys[i].String() < keys[j].String() })

	for _, k := range keys {
		if err := writeElement(buf, k.String(), v.MapIndex(k)); err != nil {
			return err
		}
	}
	return nil
}

func writeStruct(buf *bytes.Buffer, v reflect.Value) error {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}

		name, opts, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" && opts == "" {
			continue
		}
		if name == "" {
			name = f.Name
		}

		fv := v.Field(i)
		if strings.Contains(opts, "omitempty") && fv.IsZero() {
			continue
		}
		if err := writeElement(buf, name, fv); err != nil {
			return err
		}
	}
	return nil
}
