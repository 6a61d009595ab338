package tasks

import (
	"fmt"

	"medscribe.com/scribe/redis"
)

type Client struct {
	Encounters EncounterTasks
	Jobs       JobTasks
}

// NewClient is the preferred way of working with task documents.
func NewClient() (Client, error) {
	jobsRedisClient, err := redis.NewClient(JobsDB)
	if err != nil {
		return Client{}, err
	}
	encountersRedisClient, err := redis.NewClient(EncountersDB)
	if err != nil {
		return Client{}, err
	}
	return Client{
		Jobs:       JobTasks{client: jobsRedisClient},
		Encounters: EncounterTasks{client: encountersRedisClient},
	}, nil
}

func (client *Client) Close() {
	_ = client.Encounters.client.Close()
	_ = client.Jobs.client.Close()
}

func cachedPropertiesKey(redisKey string) string {
	return fmt.Sprintf("%s-cached-properties", redisKey)
}
