// Package graphson encodes graph traversal values to GraphSON 2.0 and decodes
// server responses back into them.
//
// GraphSON is JSON in which typed values travel inside an envelope:
//
//	{"@type":"g:Vertex","@value":{"id":{"@type":"g:Int32","@value":1},"label":"person"}}
//
// Plain JSON objects, arrays, strings, booleans and null pass through
// untagged.
//
// # Encoding and decoding
//
// [Marshal] and [Unmarshal] use the global [Registry]. A [Writer] or [Reader]
// built with options can add instance-local types without touching it:
//
//	w, err := graphson.NewWriter(graphson.WithSerializer(graphson.TypeOf[Money](), moneySerializer))
//	text, err := w.WriteObject(process.Bind("price", Money{Cents: 250}))
//
// Both directions go through an intermediate [Node] tree, so serializers
// and deserializers never see JSON text. [Writer.ToTree] and
// [Reader.ToObject] expose that layer directly.
//
// # Numbers
//
// Booleans are always written bare. int64 always encodes as "g:Int64";
// int and uint32 encode as "g:Int32" unless the value needs 64 bits; the
// smaller integer kinds encode as "g:Int32". float32 is "g:Float" and
// float64 "g:Double", with NaN and the infinities sent as the strings
// "NaN", "Infinity" and "-Infinity".
//
// Element ids are encoded like any other value, so a Go int id is written
// as a "g:Int32" envelope. Use an [encoding/json.Number] id to send it as a bare JSON
// number. Untyped JSON numbers decode as int64 when integral and float64
// otherwise; an integer literal outside the int64 range is an error.
//
// # Registration
//
// The built-in types are registered once, when [Default] is first called.
// The global registry is sealed as soon as a Writer or Reader snapshots it;
// [RegisterSerializer] and [RegisterDeserializer] fail after that, so
// register custom types during program initialization.
//
// # Unknown tags
//
// An envelope whose tag has no deserializer is not an error. It decodes as
// a map with "@type" and "@value" keys, with the payload decoded normally.
package graphson
