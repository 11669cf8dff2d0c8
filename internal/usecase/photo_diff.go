package usecase

import (
	"time"

	"github.com/ceyhunemlak/listing-service/internal/entity"
)

// IncomingPhoto is one entry of the photo sequence submitted by the admin
// panel. Entries with IsExisting=false carry a storage id issued by an
// already-completed upload.
type IncomingPhoto struct {
	StorageID  string
	URL        string
	IsExisting bool
}

// PhotoOrderUpdate rewrites order index / cover flag of an existing row.
type PhotoOrderUpdate struct {
	StorageID  string
	OrderIndex int
	IsCover    bool
}

// PhotoDiff is the reconciliation plan between the stored photo rows and
// a resubmitted sequence.
type PhotoDiff struct {
	ToInsert []entity.Photo
	ToDelete []string
	// Implicit is the subset of ToDelete that was not explicitly flagged:
	// previously stored ids that silently vanished from the incoming
	// sequence. Reported separately so callers can log them.
	Implicit   []string
	Updates    []PhotoOrderUpdate
	FinalOrder []string
}

// DiffPhotos computes the insert/delete/reorder plan for a listing's
// gallery. previous is the datastore's current rows, ordered by order
// index; incoming is the client's full sequence; explicitDeleteIDs are
// the ids the user actively removed.
//
// Any previously stored id that is neither resubmitted as existing nor
// explicitly deleted is treated as an implicit deletion. The final order
// is the existing entries in client order followed by the new uploads in
// upload order, with the cover flag on index 0. Update operations are
// emitted only for rows whose index or cover flag actually changed.
func DiffPhotos(listingID string, previous []entity.Photo, incoming []IncomingPhoto, explicitDeleteIDs []string) PhotoDiff {
	prevByID := make(map[string]entity.Photo, len(previous))
	for _, p := range previous {
		prevByID[p.StorageID] = p
	}

	explicit := make(map[string]bool, len(explicitDeleteIDs))
	for _, id := range explicitDeleteIDs {
		explicit[id] = true
	}

	existingIDs := make(map[string]bool, len(incoming))
	for _, in := range incoming {
		if in.IsExisting {
			existingIDs[in.StorageID] = true
		}
	}

	var diff PhotoDiff
	for _, id := range explicitDeleteIDs {
		diff.ToDelete = append(diff.ToDelete, id)
	}
	// Safety net: previously known ids missing from the incoming set
	// without an explicit delete flag are deleted as well.
	for _, p := range previous {
		if !existingIDs[p.StorageID] && !explicit[p.StorageID] {
			diff.ToDelete = append(diff.ToDelete, p.StorageID)
			diff.Implicit = append(diff.Implicit, p.StorageID)
		}
	}

	// Existing entries keep the client's order; new uploads go after them
	// in upload order.
	seen := make(map[string]bool, len(incoming))
	now := time.Now()
	for _, in := range incoming {
		if !in.IsExisting || seen[in.StorageID] {
			continue
		}
		// Reorderable only if the datastore actually knows the row.
		if _, ok := prevByID[in.StorageID]; !ok {
			continue
		}
		seen[in.StorageID] = true
		diff.FinalOrder = append(diff.FinalOrder, in.StorageID)
	}
	for _, in := range incoming {
		if in.IsExisting || seen[in.StorageID] {
			continue
		}
		// Guard against double-insert when an earlier upload step already
		// persisted the row.
		if _, ok := prevByID[in.StorageID]; ok {
			continue
		}
		seen[in.StorageID] = true
		diff.FinalOrder = append(diff.FinalOrder, in.StorageID)
		diff.ToInsert = append(diff.ToInsert, entity.Photo{
			StorageID: in.StorageID,
			ListingID: listingID,
			URL:       in.URL,
			CreatedAt: now,
		})
	}

	inserted := make(map[string]bool, len(diff.ToInsert))
	for i := range diff.ToInsert {
		inserted[diff.ToInsert[i].StorageID] = true
	}

	for idx, id := range diff.FinalOrder {
		isCover := idx == 0
		if inserted[id] {
			// New rows carry their index and cover flag on insert.
			for i := range diff.ToInsert {
				if diff.ToInsert[i].StorageID == id {
					diff.ToInsert[i].OrderIndex = idx
					diff.ToInsert[i].IsCover = isCover
				}
			}
			continue
		}
		prev := prevByID[id]
		if prev.OrderIndex != idx || prev.IsCover != isCover {
			diff.Updates = append(diff.Updates, PhotoOrderUpdate{
				StorageID:  id,
				OrderIndex: idx,
				IsCover:    isCover,
			})
		}
	}

	return diff
}
