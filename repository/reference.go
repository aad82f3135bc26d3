package repository

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/linlinbupt123-crypto/flow_intel/entity"
	wrapErrors "github.com/linlinbupt123-crypto/flow_intel/errors"
)

//go:embed reference.yaml
var defaultReference []byte

type document struct {
	DefaultAsset      string                     `yaml:"default_asset"`
	FallbackTokenLogo string                     `yaml:"fallback_token_logo"`
	DefaultTokenColor string                     `yaml:"default_token_color"`
	Logos             map[string]string          `yaml:"logos"`
	TokenColors       map[string]string          `yaml:"token_colors"`
	Chains            []entity.Chain             `yaml:"chains"`
	TopEntities       []entity.TopEntity         `yaml:"top_entities"`
	Assets            []entity.Asset             `yaml:"assets"`
	ExchangeFlows     []entity.ExchangeFlow      `yaml:"exchange_flows"`
	BalanceChanges    []entity.EntityBalance     `yaml:"balance_changes"`
	Holders           []entity.Holder            `yaml:"holders"`
	Counterparties    []entity.CounterpartyLabel `yaml:"counterparties"`
	TimeLabels        []string                   `yaml:"time_labels"`
	MarketStats       entity.MarketStats         `yaml:"market_stats"`
}

// Reference holds the read-only tables the API serves and generates from.
// Accessors return copies, so callers may sort or filter freely.
type Reference struct {
	doc        document
	assetIndex map[string]int
}

// Default loads the tables embedded in the binary.
func Default() (*Reference, error) {
	return Load(bytes.NewReader(defaultReference))
}

// Open loads tables from path, or the embedded tables when path is empty.
func Open(path string) (*Reference, error) {
	if path == "" {
		return Default()
	}
	return LoadFile(path)
}

// LoadFile loads tables from a YAML file on disk.
func LoadFile(path string) (*Reference, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, wrapErrors.WrapWithCode(wrapErrors.CodeReferenceData, "open reference file", err)
	}
	defer f.Close()
	return Load(f)
}

// Load decodes tables, resolves logo keys to URLs and validates references.
func Load(r io.Reader) (*Reference, error) {
	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, wrapErrors.WrapWithCode(wrapErrors.CodeReferenceData, "decode reference", err)
	}
	if err := doc.resolve(); err != nil {
		return nil, wrapErrors.WrapWithCode(wrapErrors.CodeReferenceData, "resolve reference", err)
	}

	ref := &Reference{doc: doc, assetIndex: make(map[string]int, len(doc.Assets))}
	for i, a := range doc.Assets {
		ref.assetIndex[strings.ToLower(a.ID)] = i
	}
	if _, ok := ref.assetIndex[strings.ToLower(doc.DefaultAsset)]; !ok {
		return nil, wrapErrors.WrapWithCode(wrapErrors.CodeReferenceData, "validate reference",
			fmt.Errorf("default asset %q not among assets", doc.DefaultAsset))
	}
	return ref, nil
}

func (d *document) resolve() error {
	switch {
	case len(d.Assets) == 0:
		return fmt.Errorf("no assets")
	case len(d.Chains) == 0:
		return fmt.Errorf("no chains")
	case len(d.TimeLabels) == 0:
		return fmt.Errorf("no time labels")
	}
	if _, ok := d.Logos[d.FallbackTokenLogo]; !ok {
		return fmt.Errorf("fallback token logo %q undefined", d.FallbackTokenLogo)
	}

	var err error
	logo := func(key string) string {
		url, ok := d.Logos[key]
		if !ok && err == nil {
			err = fmt.Errorf("logo %q undefined", key)
		}
		return url
	}
	for i := range d.TopEntities {
		d.TopEntities[i].Logo = logo(d.TopEntities[i].Logo)
	}
	for i := range d.Assets {
		d.Assets[i].Logo = logo(d.Assets[i].Logo)
	}
	for i := range d.ExchangeFlows {
		d.ExchangeFlows[i].Logo = logo(d.ExchangeFlows[i].Logo)
	}
	for i := range d.BalanceChanges {
		d.BalanceChanges[i].Logo = logo(d.BalanceChanges[i].Logo)
	}
	for i := range d.Holders {
		if key := d.Holders[i].Logo; key != nil {
			url := logo(*key)
			d.Holders[i].Logo = &url
		}
	}
	for i := range d.Counterparties {
		d.Counterparties[i].Logo = logo(d.Counterparties[i].Logo)
	}
	return err
}

func (r *Reference) Chains() []entity.Chain               { return slices.Clone(r.doc.Chains) }
func (r *Reference) TopEntities() []entity.TopEntity      { return slices.Clone(r.doc.TopEntities) }
func (r *Reference) Assets() []entity.Asset               { return slices.Clone(r.doc.Assets) }
func (r *Reference) ExchangeFlows() []entity.ExchangeFlow { return slices.Clone(r.doc.ExchangeFlows) }
func (r *Reference) BalanceChanges() []entity.EntityBalance {
	return slices.Clone(r.doc.BalanceChanges)
}
func (r *Reference) Holders() []entity.Holder { return slices.Clone(r.doc.Holders) }
func (r *Reference) Counterparties() []entity.CounterpartyLabel {
	return slices.Clone(r.doc.Counterparties)
}
func (r *Reference) TimeLabels() []string            { return slices.Clone(r.doc.TimeLabels) }
func (r *Reference) MarketStats() entity.MarketStats { return r.doc.MarketStats }

// Asset looks up a featured asset by id, case-insensitively.
func (r *Reference) Asset(id string) (entity.Asset, bool) {
	i, ok := r.assetIndex[strings.ToLower(id)]
	if !ok {
		return entity.Asset{}, false
	}
	return r.doc.Assets[i], true
}

// AssetOrDefault falls back to the default asset for unknown ids.
func (r *Reference) AssetOrDefault(id string) entity.Asset {
	if a, ok := r.Asset(id); ok {
		return a
	}
	a, _ := r.Asset(r.doc.DefaultAsset)
	return a
}

// TokenLogo returns the logo of a token symbol, or the fallback token logo.
func (r *Reference) TokenLogo(symbol string) string {
	if url, ok := r.doc.Logos[strings.ToLower(symbol)]; ok {
		return url
	}
	return r.doc.Logos[r.doc.FallbackTokenLogo]
}

// TokenColor returns the display colour of a token symbol.
func (r *Reference) TokenColor(symbol string) string {
	if c, ok := r.doc.TokenColors[strings.ToUpper(symbol)]; ok {
		return c
	}
	return r.doc.DefaultTokenColor
}
