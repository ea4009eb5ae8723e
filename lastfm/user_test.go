package lastfm

import (
	"context"
	"reflect"
	"testing"
)

func TestUserTopTracksSortedByPlaycount(t *testing.T) {
	client, _ := testClient(map[string]string{
		"/user/alice/toptracks.xml": `<mostplayed>
			<track>
				<name>One</name>
				<artist mbid="65f4f0c5">Metallica</artist>
				<playcount>12</playcount>
			</track>
			<track>
				<name>Believe</name>
				<artist>Cher</artist>
				<playcount>30</playcount>
			</track>
		</mostplayed>`,
	})

	user, _ := client.User("alice")
	tracks, err := user.TopTracks(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(tracks) != 2 {
		t.Fatalf("len = %d; want 2", len(tracks))
	}
	if tracks[0].Name != "Believe" || tracks[1].Name != "One" {
		t.Errorf("order = %s, %s; want Believe, One", tracks[0].Name, tracks[1].Name)
	}
	if tracks[1].Artist == nil || tracks[1].Artist.Name != "Metallica" {
		t.Fatalf("artist = %+v; want Metallica", tracks[1].Artist)
	}
	if tracks[1].Artist.MBID != "65f4f0c5" {
		t.Errorf("artist MBID = %q; want it read from the sub-record", tracks[1].Artist.MBID)
	}
}

func TestFriendsKeepServiceOrder(t *testing.T) {
	client, _ := testClient(map[string]string{
		"/user/alice/friends.xml": `<friends user="alice">
			<user username="alice"><url>http://users/alice</url></user>
			<user username="zed"><url>http://users/zed</url></user>
			<user username="bob"><url>http://users/bob</url></user>
		</friends>`,
	})

	user, _ := client.User("alice")
	friends, err := user.Friends(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	names := []string{}
	for _, f := range friends {
		names = append(names, f.Name)
	}
	want := []string{"zed", "bob"}
	if !reflect.DeepEqual(names, want) {
		t.Fatalf("friends = %v; want %v (header dropped, service order kept)", names, want)
	}
	if friends[0].URL != "http://users/zed" {
		t.Errorf("URL = %q", friends[0].URL)
	}
	if user.URL != "http://users/alice" {
		t.Errorf("user.URL = %q; want it refreshed from the header record", user.URL)
	}
}

func TestNeighboursCarryMatchAndBackReference(t *testing.T) {
	client, _ := testClient(map[string]string{
		"/user/alice/neighbours.xml": `<neighbours user="alice">
			<user username="alice"/>
			<user username="carol"><match>70.5</match><image>http://img/carol.png</image></user>
		</neighbours>`,
	})

	user, _ := client.User("alice")
	neighbours, err := user.Neighbours(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(neighbours) != 1 {
		t.Fatalf("len = %d; want 1", len(neighbours))
	}
	n := neighbours[0]
	if n.Name != "carol" || n.Match != 70.5 {
		t.Errorf("neighbour = %+v; want carol with match 70.5", n)
	}
	if n.Picture != "http://img/carol.png" {
		t.Errorf("Picture = %q", n.Picture)
	}
	if n.RelatedTo != user {
		t.Error("RelatedTo does not point back at the queried user")
	}
}

func TestUserTopArtistsReadsPictureKey(t *testing.T) {
	client, _ := testClient(map[string]string{
		"/user/alice/topartists.xml": `<topartists>
			<artist>
				<name>Queen</name>
				<mbid>0383dadf</mbid>
				<playcount>412</playcount>
				<picture>http://img/queen.jpg</picture>
			</artist>
			<artist>
				<name>Cher</name>
				<playcount>120</playcount>
			</artist>
		</topartists>`,
	})

	user, _ := client.User("alice")
	artists, err := user.TopArtists(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(artists) != 2 {
		t.Fatalf("len = %d; want 2", len(artists))
	}
	if artists[0].Name != "Queen" {
		t.Errorf("order: first = %s; want Queen", artists[0].Name)
	}
	if artists[0].Picture != "http://img/queen.jpg" {
		t.Errorf("Picture = %q; want it read from the picture key", artists[0].Picture)
	}
}
