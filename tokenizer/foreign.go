package tokenizer

// TokenSource is the pull-based contract a consumer drives: Next
// advances by one token, Current retrieves it, Err surfaces a latched
// strict-mode fatal error. *Tokenizer satisfies this directly; Foreign
// wraps any TokenSource (in practice always a *Tokenizer) with the
// same contract so a consumer cannot tell the two apart.
type TokenSource interface {
	Next() bool
	Current() Token
	Err() error
}

// Foreign decorates a TokenSource, tracking SVG/MathML nesting depth
// on the emitted stream and rewriting tag/attribute names into their
// camelCase forms while inside one of those subtrees. Grounded on
// _examples/heathj-gobrowse/parser/tree_constructor.go's
// svgNamespace/mathmlNamespace element-name adjustment tables, pulled
// out into a standalone decorator since tree construction (which owns
// namespace assignment there) is out of scope here.
type Foreign struct {
	src TokenSource

	svgDepth    int
	mathmlDepth int
	current     Token
}

// NewForeign wraps src, starting outside any foreign-content subtree
// (both depths at -1, per the tokenizer state's SVG-depth/MathML-depth
// fields).
func NewForeign(src TokenSource) *Foreign {
	return &Foreign{src: src, svgDepth: -1, mathmlDepth: -1}
}

func (f *Foreign) Err() error { return f.src.Err() }

// Current returns the most recently adjusted token.
func (f *Foreign) Current() Token { return f.current }

// Next pulls one token from the wrapped source, adjusts it if it falls
// inside an SVG or MathML subtree, and updates the nesting depths.
// SVG and MathML depths are disjoint here: whichever subtree is
// currently open is the only one a StartTag/EndTag can affect, exactly
// as spec'd; a real tree constructor would additionally handle HTML
// integration points that re-enter plain HTML content mid-subtree, but
// that decision belongs to tree construction, out of scope here.
func (f *Foreign) Next() bool {
	ok := f.src.Next()
	tok := f.src.Current()
	f.current = f.adjust(tok)
	return ok
}

func (f *Foreign) adjust(tok Token) Token {
	switch tok.Type {
	case StartTagToken:
		return f.adjustStartTag(tok)
	case EndTagToken:
		return f.adjustEndTag(tok)
	default:
		return tok
	}
}

func (f *Foreign) adjustStartTag(tok Token) Token {
	switch {
	case f.svgDepth < 0 && f.mathmlDepth < 0 && tok.TagName == "svg":
		f.svgDepth = 0
		return f.adjustSVG(tok)
	case f.svgDepth < 0 && f.mathmlDepth < 0 && tok.TagName == "math":
		f.mathmlDepth = 0
		return f.adjustMathML(tok)
	case f.svgDepth >= 0:
		tok = f.adjustSVG(tok)
		if !tok.SelfClosing {
			f.svgDepth++
		}
		return tok
	case f.mathmlDepth >= 0:
		tok = f.adjustMathML(tok)
		if !tok.SelfClosing {
			f.mathmlDepth++
		}
		return tok
	default:
		return tok
	}
}

func (f *Foreign) adjustEndTag(tok Token) Token {
	switch {
	case f.svgDepth >= 0:
		tok = f.adjustSVGTagName(tok)
		f.svgDepth--
		return tok
	case f.mathmlDepth >= 0:
		f.mathmlDepth--
		return tok
	default:
		return tok
	}
}

func (f *Foreign) adjustSVG(tok Token) Token {
	tok = f.adjustSVGTagName(tok)
	if len(tok.Attributes) == 0 {
		return tok
	}
	adjusted := make([]Attribute, len(tok.Attributes))
	for i, a := range tok.Attributes {
		adjusted[i] = Attribute{Name: svgAttributeName(a.Name), Value: a.Value}
	}
	tok.Attributes = adjusted
	return tok
}

func (f *Foreign) adjustSVGTagName(tok Token) Token {
	if name, ok := svgTagNameAdjustments[tok.TagName]; ok {
		tok.TagName = name
	}
	return tok
}

func (f *Foreign) adjustMathML(tok Token) Token {
	if len(tok.Attributes) == 0 {
		return tok
	}
	adjusted := make([]Attribute, len(tok.Attributes))
	for i, a := range tok.Attributes {
		adjusted[i] = Attribute{Name: mathmlAttributeName(a.Name), Value: a.Value}
	}
	tok.Attributes = adjusted
	return tok
}

// svgTagNameAdjustments is the fixed WHATWG table of SVG element names
// whose lowercased tokenizer output must be corrected back to their
// authored mixed-case spelling.
var svgTagNameAdjustments = map[string]string{
	"altglyph":            "altGlyph",
	"altglyphdef":         "altGlyphDef",
	"altglyphitem":        "altGlyphItem",
	"animatecolor":        "animateColor",
	"animatemotion":       "animateMotion",
	"animatetransform":    "animateTransform",
	"clippath":            "clipPath",
	"feblend":             "feBlend",
	"fecolormatrix":       "feColorMatrix",
	"fecomponenttransfer": "feComponentTransfer",
	"fecomposite":         "feComposite",
	"feconvolvematrix":    "feConvolveMatrix",
	"fediffuselighting":   "feDiffuseLighting",
	"fedisplacementmap":   "feDisplacementMap",
	"fedistantlight":      "feDistantLight",
	"fedropshadow":        "feDropShadow",
	"feflood":             "feFlood",
	"fefunca":             "feFuncA",
	"fefuncb":             "feFuncB",
	"fefuncg":             "feFuncG",
	"fefuncr":             "feFuncR",
	"fegaussianblur":      "feGaussianBlur",
	"feimage":             "feImage",
	"femerge":             "feMerge",
	"femergenode":         "feMergeNode",
	"femorphology":        "feMorphology",
	"feoffset":            "feOffset",
	"fepointlight":        "fePointLight",
	"fespecularlighting":  "feSpecularLighting",
	"fespotlight":         "feSpotLight",
	"fetile":              "feTile",
	"feturbulence":        "feTurbulence",
	"foreignobject":       "foreignObject",
	"glyphref":            "glyphRef",
	"lineargradient":      "linearGradient",
	"radialgradient":      "radialGradient",
	"textpath":            "textPath",
}

// svgAttributeAdjustments is the fixed WHATWG table of SVG attribute
// names known ahead of time to need camelCase correction.
var svgAttributeAdjustments = map[string]string{
	"attributename":     "attributeName",
	"attributetype":     "attributeType",
	"basefrequency":     "baseFrequency",
	"baseprofile":       "baseProfile",
	"calcmode":          "calcMode",
	"clippathunits":     "clipPathUnits",
	"diffuseconstant":   "diffuseConstant",
	"edgemode":          "edgeMode",
	"filterunits":       "filterUnits",
	"glyphref":          "glyphRef",
	"gradienttransform": "gradientTransform",
	"gradientunits":     "gradientUnits",
	"kernelmatrix":      "kernelMatrix",
	"kernelunitlength":  "kernelUnitLength",
	"keypoints":         "keyPoints",
	"keysplines":        "keySplines",
	"keytimes":          "keyTimes",
	"lengthadjust":      "lengthAdjust",
	"limitingconeangle": "limitingConeAngle",
	"markerheight":      "markerHeight",
	"markerunits":       "markerUnits",
	"markerwidth":       "markerWidth",
	"maskcontentunits":  "maskContentUnits",
	"maskunits":         "maskUnits",
	"numoctaves":        "numOctaves",
	"pathlength":        "pathLength",
	"patterncontentunits": "patternContentUnits",
	"patterntransform":  "patternTransform",
	"patternunits":      "patternUnits",
	"pointsatx":         "pointsAtX",
	"pointsaty":         "pointsAtY",
	"pointsatz":         "pointsAtZ",
	"preservealpha":     "preserveAlpha",
	"preserveaspectratio": "preserveAspectRatio",
	"primitiveunits":    "primitiveUnits",
	"refx":              "refX",
	"refy":              "refY",
	"repeatcount":       "repeatCount",
	"repeatdur":         "repeatDur",
	"requiredextensions": "requiredExtensions",
	"requiredfeatures":  "requiredFeatures",
	"specularconstant":  "specularConstant",
	"specularexponent":  "specularExponent",
	"spreadmethod":      "spreadMethod",
	"startoffset":       "startOffset",
	"stddeviation":      "stdDeviation",
	"stitchtiles":       "stitchTiles",
	"surfacescale":      "surfaceScale",
	"systemlanguage":    "systemLanguage",
	"tablevalues":       "tableValues",
	"targetx":           "targetX",
	"targety":           "targetY",
	"textlength":        "textLength",
	"viewbox":           "viewBox",
	"viewtarget":        "viewTarget",
	"xchannelselector":  "xChannelSelector",
	"ychannelselector":  "yChannelSelector",
	"zoomandpan":        "zoomAndPan",
}

// mathmlAttributeAdjustments is WHATWG's much smaller MathML table:
// only definitionURL needs correcting back from the tokenizer's
// lowercased form.
var mathmlAttributeAdjustments = map[string]string{
	"definitionurl": "definitionURL",
}

// svgAttributeName looks up name in the fixed table, returning it
// unchanged on a miss. Names outside the table are not necessarily
// camelCase derivations of their lowercased form (xlink:href, xml:lang,
// data-*), so camelCasing on a miss would corrupt them.
func svgAttributeName(name string) string {
	if adjusted, ok := svgAttributeAdjustments[name]; ok {
		return adjusted
	}
	return name
}

func mathmlAttributeName(name string) string {
	if adjusted, ok := mathmlAttributeAdjustments[name]; ok {
		return adjusted
	}
	return name
}
