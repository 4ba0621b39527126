package group

import (
	"encoding/json"
	"encoding/xml"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/famoser/post-evoting-sub013/big"

	"github.com/go-errors/errors"
)

// XMLHeader can be used as the XML header when writing parameters in XML format.
const XMLHeader = "<?xml version=\"1.0\" encoding=\"UTF-8\" standalone=\"no\"?>\n"

// Params is the configuration of a group: modulus p, order q and generator g,
// all as decimal numbers in both XML and JSON.
type Params struct {
	XMLName xml.Name `xml:"GroupParameters" json:"-"`
	P       *big.Int `xml:"p" json:"p"`
	Q       *big.Int `xml:"q" json:"q"`
	G       *big.Int `xml:"g" json:"g"`
}

// NewGroupFromXML parses XML parameters and builds the group.
func NewGroupFromXML(bts []byte) (*Group, error) {
	params := &Params{}
	if err := xml.Unmarshal(bts, params); err != nil {
		return nil, errors.WrapPrefix(err, "failed to parse group parameters", 0)
	}
	return NewGroupFromParams(params)
}

// NewGroupFromJSON parses JSON parameters and builds the group.
func NewGroupFromJSON(bts []byte) (*Group, error) {
	params := &Params{}
	if err := json.Unmarshal(bts, params); err != nil {
		return nil, errors.WrapPrefix(err, "failed to parse group parameters", 0)
	}
	return NewGroupFromParams(params)
}

// NewGroupFromFile reads group parameters from a .json or .xml file.
func NewGroupFromFile(filename string) (*Group, error) {
	bts, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".json":
		return NewGroupFromJSON(bts)
	case ".xml":
		return NewGroupFromXML(bts)
	default:
		return nil, InvalidArgument("unsupported group parameter file %s", filename)
	}
}

// WriteTo writes the XML-serialized parameters to the given writer.
func (params *Params) WriteTo(writer io.Writer) (int64, error) {
	numHeaderBytes, err := writer.Write([]byte(XMLHeader))
	if err != nil {
		return 0, err
	}

	b, err := xml.MarshalIndent(params, "", "   ")
	if err != nil {
		return int64(numHeaderBytes), err
	}
	numBodyBytes, err := writer.Write(b)
	return int64(numHeaderBytes + numBodyBytes), err
}

// WriteToFile writes the parameters to an XML file. If any existing file with
// the same filename should be overwritten, set forceOverwrite to true.
func (params *Params) WriteToFile(filename string, forceOverwrite bool) (int64, error) {
	var f *os.File
	var err error
	if forceOverwrite {
		f, err = os.Create(filename)
	} else {
		// This should return an error if the file already exists
		f, err = os.OpenFile(filename, os.O_RDWR|os.O_CREATE|os.O_EXCL, 0644)
	}
	if err != nil {
		return 0, err
	}
	defer f.Close()

	return params.WriteTo(f)
}
