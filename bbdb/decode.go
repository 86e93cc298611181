package bbdb

import (
	"fmt"

	"github.com/signadot/bbdb/ir"
)

// Record field indices.  Index 2 is reserved and never read.
const (
	fieldFirstName = 0
	fieldLastName  = 1
	fieldCompany   = 3
	fieldAKAs      = 4
	fieldPhones    = 5
	fieldAddresses = 6
	fieldNet       = 7
	fieldNotes     = 8
)

const (
	phoneIdentifier = 0
	phoneNumber     = 1
)

const (
	addrIdentifier = iota
	addrStreets
	addrStreet3
	addrCity
	addrState
	addrZip
	addrCountry
)

// DecodePhone decodes ["identifier" "number"].  Both fields are required.
func DecodePhone(c ir.Collection) (Phone, error) {
	id, err := requiredString(c, phoneIdentifier)
	if err != nil {
		return Phone{}, wrapField("identifier", err)
	}
	num, err := requiredString(c, phoneNumber)
	if err != nil {
		return Phone{}, wrapField("number", err)
	}
	return Phone{Identifier: id, Number: num}, nil
}

// DecodeAddress decodes an address collection.  All fields are optional.
func DecodeAddress(c ir.Collection) (Address, error) {
	var (
		res Address
		err error
	)
	if res.Identifier, err = ir.AsString(c, addrIdentifier); err != nil {
		return Address{}, wrapField("identifier", err)
	}
	if res.Streets, err = stringList(c, addrStreets); err != nil {
		return Address{}, wrapField("streets", err)
	}
	opt := []struct {
		dst  **string
		i    int
		name string
	}{
		{&res.Street3, addrStreet3, "street3"},
		{&res.City, addrCity, "city"},
		{&res.State, addrState, "state"},
		{&res.Zip, addrZip, "zip"},
		{&res.Country, addrCountry, "country"},
	}
	for _, f := range opt {
		if *f.dst, err = ir.AsString(c, f.i); err != nil {
			return Address{}, wrapField(f.name, err)
		}
	}
	return res, nil
}

// DecodeEntry decodes a record.  The first failing field aborts decoding.
func DecodeEntry(c ir.Collection) (*Entry, error) {
	var (
		e   = &Entry{}
		err error
	)
	if e.FirstName, err = ir.AsString(c, fieldFirstName); err != nil {
		return nil, wrapField("firstName", err)
	}
	if e.LastName, err = ir.AsString(c, fieldLastName); err != nil {
		return nil, wrapField("lastName", err)
	}
	if e.Company, err = ir.AsString(c, fieldCompany); err != nil {
		return nil, wrapField("company", err)
	}
	if e.AKAs, err = stringList(c, fieldAKAs); err != nil {
		return nil, wrapField("akas", err)
	}
	if e.Phones, err = decodeEach(c, fieldPhones, "phones", DecodePhone); err != nil {
		return nil, err
	}
	if e.Addresses, err = decodeEach(c, fieldAddresses, "addresses", DecodeAddress); err != nil {
		return nil, err
	}
	if e.NetworkAddresses, err = stringList(c, fieldNet); err != nil {
		return nil, wrapField("networkAddresses", err)
	}
	if e.Notes, err = decodeNotes(c); err != nil {
		return nil, err
	}
	return e, nil
}

func requiredString(c ir.Collection, i int) (string, error) {
	s, err := ir.AsString(c, i)
	if err != nil {
		return "", err
	}
	if s == nil {
		return "", &MissingFieldError{Index: i}
	}
	return *s, nil
}

// stringList returns the strings of the collection at index i.
func stringList(c ir.Collection, i int) ([]string, error) {
	items, err := ir.AsCollection(c, i)
	if err != nil {
		return nil, err
	}
	res := make([]string, 0, len(items))
	for j, v := range items {
		s, ok := v.(ir.String)
		if !ok {
			return nil, &ir.TypeError{Index: j, Expected: ir.StringKind.String(), Actual: ir.Classify(v)}
		}
		res = append(res, s.Text())
	}
	return res, nil
}

// decodeEach decodes every item of the collection at index i, each of which
// must itself be a collection.
func decodeEach[T any](c ir.Collection, i int, name string, dec func(ir.Collection) (T, error)) ([]T, error) {
	items, err := ir.AsCollection(c, i)
	if err != nil {
		return nil, wrapField(name, err)
	}
	res := make([]T, 0, len(items))
	for j, v := range items {
		sub, ok := v.(ir.Collection)
		if !ok {
			return nil, wrapField(name, &ir.TypeError{Index: j, Expected: ir.CollectionKind.String(), Actual: ir.Classify(v)})
		}
		x, err := dec(sub)
		if err != nil {
			return nil, wrapField(fmt.Sprintf("%s[%d]", name, j), err)
		}
		res = append(res, x)
	}
	return res, nil
}

func decodeNotes(c ir.Collection) (map[string]string, error) {
	notes := map[string]string{}
	v, ok := ir.Get(c, fieldNotes)
	if !ok {
		return notes, nil
	}
	if c, ok := v.(ir.Collection); ok && c.Len() == 0 {
		// () reads as nil.
		return notes, nil
	}
	al, ok := v.(ir.AList)
	if !ok {
		return nil, wrapField("notes", &ir.TypeError{Index: fieldNotes, Expected: ir.AListKind.String(), Actual: ir.Classify(v)})
	}
	for j, ent := range al.All() {
		s, ok := ent.Value().(ir.String)
		if !ok {
			return nil, wrapField("notes."+ent.Key(), &ir.TypeError{Index: j, Expected: ir.StringKind.String(), Actual: ir.Classify(ent.Value())})
		}
		notes[ent.Key()] = s.Text()
	}
	return notes, nil
}
