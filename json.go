package molbox

//JSON interchange for boxes, so they can be passed around between programs,
//including the Python simulation tools, without going through a simulation
//file format.

import "encoding/json"

//MarshalJSON encodes the box as a JSON document holding the 9 elements of
//its matrix, in row-major order and at full precision, plus the display
//precision.
func (B *Box) MarshalJSON() ([]byte, error) {
	j, err := json.Marshal(struct {
		Vectors   []float64 `json:"vectors"`
		Precision int       `json:"precision"`
	}{
		Vectors:   B.Flat(),
		Precision: B.precision,
	})
	if err != nil {
		return nil, err
	}
	return j, nil
}

//UnmarshalJSON rebuilds a box from its JSON form. A document without a
//precision field gets DefPrecision. The document goes through the same
//validation as every other construction, so one carrying degenerate
//vectors, the wrong number of elements or a negative precision is rejected
//and the receiver is left untouched.
func (B *Box) UnmarshalJSON(b []byte) error {
	a := struct {
		Vectors   []float64 `json:"vectors"`
		Precision int       `json:"precision"`
	}{Precision: DefPrecision}
	err := json.Unmarshal(b, &a)
	if err != nil {
		return err
	}
	nb, err := FromFlat(a.Vectors, a.Precision)
	if err != nil {
		return errDecorate(err, "UnmarshalJSON")
	}
	B.vectors = nb.vectors
	B.precision = nb.precision
	return nil
}
