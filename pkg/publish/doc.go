// Package publish uploads rendered documents to S3.
//
//	client := publish.NewClient(publish.ClientOptions{Region: "eu-west-1"})
//	pub := publish.New(client, "my-site", "pages/")
//
//	obj, err := pub.Publish(ctx, "index.html", html)
//
// Any S3-compatible endpoint works; set ClientOptions.Endpoint and
// PathStyle for MinIO and friends.
package publish
