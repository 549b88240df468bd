package graphson

import (
	"io"
	"reflect"
	"slices"

	"github.com/charmbracelet/log"
)

// DefaultLambdaLanguage is used for lambdas that do not name a language.
const DefaultLambdaLanguage = "gremlin-groovy"

// DefaultHostLanguages are the script languages whose lambdas carry a
// declared arity and the "lambda " prefix.
var DefaultHostLanguages = []string{"gremlin-python", "gremlin-jython"}

// Option configures a Writer or Reader.
type Option func(*config)

type config struct {
	registry       *Registry
	overlay        []func(*Registry) error
	tagAliases     map[string]string
	aliases        *Aliases
	logger         *log.Logger
	lambdaLanguage string
	hostLanguages  []string
}

func newConfig(opts []Option) *config {
	c := &config{
		aliases:        DefaultAliases,
		lambdaLanguage: DefaultLambdaLanguage,
		hostLanguages:  DefaultHostLanguages,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.registry == nil {
		c.registry = Default()
	}
	if c.logger == nil {
		c.logger = log.New(io.Discard)
	}
	return c
}

// snapshot seals the base registry and returns a sealed copy carrying the
// instance-local overlay. The base registry is never modified.
func (c *config) snapshot() (*Registry, error) {
	c.registry.Seal()
	snap := c.registry.Clone()
	for _, apply := range c.overlay {
		if err := apply(snap); err != nil {
			return nil, err
		}
	}
	for custom, builtin := range c.tagAliases {
		d, ok := snap.Deserializer(builtin)
		if !ok {
			c.logger.Warn("tag alias target not registered", "alias", custom, "tag", builtin)
			continue
		}
		if err := snap.RegisterDeserializer(custom, d); err != nil {
			return nil, err
		}
	}
	snap.Seal()
	return snap, nil
}

// WithRegistry replaces the global registry as the base table.
func WithRegistry(r *Registry) Option { return func(c *config) { c.registry = r } }

// WithSerializer adds an instance-local serializer for t.
func WithSerializer(t reflect.Type, s Serializer) Option {
	return func(c *config) {
		c.overlay = append(c.overlay, func(r *Registry) error { return r.RegisterSerializer(t, s) })
	}
}

// WithDeserializer adds an instance-local deserializer for tag.
func WithDeserializer(tag string, d Deserializer) Option {
	return func(c *config) {
		c.overlay = append(c.overlay, func(r *Registry) error { return r.RegisterDeserializer(tag, d) })
	}
}

// WithTagAlias makes a Reader decode custom with the deserializer of builtin,
// for servers that emit vendor tags for standard types.
func WithTagAlias(custom, builtin string) Option {
	return func(c *config) {
		if c.tagAliases == nil {
			c.tagAliases = map[string]string{}
		}
		c.tagAliases[custom] = builtin
	}
}

// WithAliases replaces the enum name alias table.
func WithAliases(a *Aliases) Option { return func(c *config) { c.aliases = a } }

// WithLogger sets the debug logger. The default discards output.
func WithLogger(l *log.Logger) Option { return func(c *config) { c.logger = l } }

// WithLambdaLanguage sets the language of lambdas that do not name one.
func WithLambdaLanguage(lang string) Option {
	return func(c *config) {
		if lang != "" {
			c.lambdaLanguage = lang
		}
	}
}

// WithHostLanguages sets the languages whose lambdas carry a declared arity.
func WithHostLanguages(langs ...string) Option {
	return func(c *config) { c.hostLanguages = slices.Clone(langs) }
}
