package cache

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/2beens/athletemonitor/internal/athlete/subjects"
	"github.com/2beens/athletemonitor/internal/telemetry/metrics"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
)

const subjectCacheName = "subject"

type subjectGetter interface {
	GetSubject(ctx context.Context, id int) (subjects.Subject, error)
}

// SubjectCache is an in-process read-through cache in front of the subjects repo.
// Profiles barely change, and every engine call starts by loading one.
type SubjectCache struct {
	cache          *freecache.Cache
	ttl            time.Duration
	next           subjectGetter
	metricsManager *metrics.Manager
}

func NewSubjectCache(next subjectGetter, sizeMB int, ttl time.Duration, metricsManager *metrics.Manager) *SubjectCache {
	megabyte := 1024 * 1024
	return &SubjectCache{
		cache:          freecache.NewCache(sizeMB * megabyte),
		ttl:            ttl,
		next:           next,
		metricsManager: metricsManager,
	}
}

func (c *SubjectCache) GetSubject(ctx context.Context, id int) (subjects.Subject, error) {
	cacheKey := []byte(strconv.Itoa(id))
	if subjectBytes, err := c.cache.Get(cacheKey); err == nil {
		var subject subjects.Subject
		if err := json.Unmarshal(subjectBytes, &subject); err == nil {
			recordLookup(c.metricsManager, subjectCacheName, lookupHit)
			return subject, nil
		} else {
			log.Errorf("failed to unmarshal cached subject %d: %s", id, err)
		}
	}
	recordLookup(c.metricsManager, subjectCacheName, lookupMiss)

	subject, err := c.next.GetSubject(ctx, id)
	if err != nil {
		return subjects.Subject{}, err
	}

	subjectBytes, err := json.Marshal(subject)
	if err != nil {
		log.Errorf("failed to marshal subject %d: %s", id, err)
		return subject, nil
	}
	if err := c.cache.Set(cacheKey, subjectBytes, int(c.ttl.Seconds())); err != nil {
		log.Errorf("failed to cache subject %d: %s", id, err)
	}

	return subject, nil
}

// Forget drops a subject profile, e.g. after it was edited.
func (c *SubjectCache) Forget(id int) {
	c.cache.Del([]byte(strconv.Itoa(id)))
}
