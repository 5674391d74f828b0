package export

import (
	"io"

	"github.com/jszwec/csvutil"
	"github.com/rotisserie/eris"

	"github.com/openmfl/mfl-cli/internal/model"
)

// WriteCSV writes the flattened projection of a collection as CSV with
// a header row.
func WriteCSV(w io.Writer, records []*model.FacilityRecord) error {
	data, err := csvutil.Marshal(FlattenAll(records))
	if err != nil {
		return eris.Wrap(err, "export: encode csv")
	}
	if _, err := w.Write(data); err != nil {
		return eris.Wrap(err, "export: write csv")
	}
	return nil
}
